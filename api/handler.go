package api

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
	"cpu-scheduler-simulator/internal/session"
	"cpu-scheduler-simulator/internal/tracing"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	ListProcesses(ctx *fiber.Ctx) error
	AddProcess(ctx *fiber.Ctx) error
	UpdateProcess(ctx *fiber.Ctx) error
	UpdateProcessByID(ctx *fiber.Ctx) error
	RemoveProcess(ctx *fiber.Ctx) error
	RemoveProcessByID(ctx *fiber.Ctx) error
	ClearProcesses(ctx *fiber.Ctx) error
	ScheduleSession(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	sessions *session.Store
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:   config,
		sessions: session.New(config.SimulatorOptions()),
	}
}

// Schedule runs a policy over the posted jobs without keeping any state.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	policy, err := s.policy(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	simulator := schedulers.NewSimulator(schedulers.Options{})
	for i, job := range request.Jobs {
		if _, _, err := simulator.Add(job.Name, job.BurstTime, job.ArrivalTime); err != nil {
			return writeError(ctx, fmt.Errorf("job %d: %w", i, err))
		}
	}
	return s.run(ctx, simulator, policy, false)
}

func (s *SchedulerHandlerImpl) CreateSession(ctx *fiber.Ctx) error {
	id := s.sessions.Create()
	log.Println("session:", id, "created")
	return ctx.Status(fiber.StatusCreated).JSON(responses.SessionResponse{ID: id})
}

func (s *SchedulerHandlerImpl) DeleteSession(ctx *fiber.Ctx) error {
	if err := s.sessions.Delete(ctx.Params("id")); err != nil {
		return writeError(ctx, err)
	}
	log.Println("session:", ctx.Params("id"), "deleted")
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) ListProcesses(ctx *fiber.Ctx) error {
	simulator, err := s.sessions.Load(ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.ProcessListResponse{Processes: simulator.Snapshot()})
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	simulator, err := s.sessions.Load(ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	var job requests.Job
	if err := ctx.BodyParser(&job); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	index, id, err := simulator.Add(job.Name, job.BurstTime, job.ArrivalTime)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(responses.AddProcessResponse{Index: index, ID: id})
}

func (s *SchedulerHandlerImpl) UpdateProcess(ctx *fiber.Ctx) error {
	simulator, err := s.sessions.Load(ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	var job requests.Job
	if err := ctx.BodyParser(&job); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	if err := simulator.Update(index, job.Name, job.BurstTime, job.ArrivalTime); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.ProcessListResponse{Processes: simulator.Snapshot()})
}

func (s *SchedulerHandlerImpl) UpdateProcessByID(ctx *fiber.Ctx) error {
	simulator, err := s.sessions.Load(ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	var job requests.Job
	if err := ctx.BodyParser(&job); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	if err := simulator.UpdateByID(ctx.Params("pid"), job.Name, job.BurstTime, job.ArrivalTime); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.ProcessListResponse{Processes: simulator.Snapshot()})
}

func (s *SchedulerHandlerImpl) RemoveProcess(ctx *fiber.Ctx) error {
	simulator, err := s.sessions.Load(ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	if err := simulator.RemoveAt(index); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.ProcessListResponse{Processes: simulator.Snapshot()})
}

func (s *SchedulerHandlerImpl) RemoveProcessByID(ctx *fiber.Ctx) error {
	simulator, err := s.sessions.Load(ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	if err := simulator.RemoveByID(ctx.Params("pid")); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.ProcessListResponse{Processes: simulator.Snapshot()})
}

func (s *SchedulerHandlerImpl) ClearProcesses(ctx *fiber.Ctx) error {
	simulator, err := s.sessions.Load(ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	simulator.Clear()
	return ctx.SendStatus(fiber.StatusNoContent)
}

// ScheduleSession runs a policy over a session's registry. The reorder query
// parameter overrides the configured FCFS reordering for this call.
func (s *SchedulerHandlerImpl) ScheduleSession(ctx *fiber.Ctx) error {
	simulator, err := s.sessions.Load(ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	policy, err := s.policy(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	reorder := s.config.ReorderOnFCFS
	if value := ctx.Query("reorder"); value != "" {
		if reorder, err = strconv.ParseBool(value); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid reorder flag"})
		}
	}
	return s.run(ctx, simulator, policy, reorder)
}

func (s *SchedulerHandlerImpl) policy(ctx *fiber.Ctx) (schedulers.Policy, error) {
	name := ctx.Params("policy")
	if name == "" || name == "default" {
		return s.config.DefaultPolicy, nil
	}
	return schedulers.ParsePolicy(name)
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, simulator *schedulers.Simulator, policy schedulers.Policy, reorder bool) error {
	_, span := tracing.StartSpan(ctx.UserContext(), "schedule")
	span.WithAttributes(map[string]string{"policy": string(policy)})
	run, err := simulator.RunWithReorder(policy, reorder)
	if err == nil {
		span.WithInt("processes", len(run.Results))
	}
	tracing.EndSpan(span, err)
	if err != nil {
		return writeError(ctx, err)
	}

	response := responses.NewScheduleResponse(run)
	log.Printf("response is: %+v", response)
	return ctx.JSON(response)
}

func writeError(ctx *fiber.Ctx, err error) error {
	var validationErr *core.ValidationError
	var indexErr *core.IndexError
	var notFoundErr *core.NotFoundError
	status := fiber.StatusBadRequest
	switch {
	case errors.As(err, &validationErr):
		status = fiber.StatusBadRequest
	case errors.As(err, &indexErr), errors.As(err, &notFoundErr), errors.Is(err, session.ErrNotFound):
		status = fiber.StatusNotFound
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
