package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"event-registration-system/models"
	"event-registration-system/store"
	"event-registration-system/utils"
)

// RegistrationService serves the public sign-up endpoints: the single
// Data Alchemy registration and the create/join workflow for each team
// event.
type RegistrationService struct {
	Singles    *store.SingleStore
	Survival   *TeamWorkflow
	CodeCortex *TeamWorkflow
}

func NewRegistrationService(singles *store.SingleStore, survival, codeCortex *store.TeamStore) *RegistrationService {
	return &RegistrationService{
		Singles:    singles,
		Survival:   NewTeamWorkflow(survival, models.EventSurvival),
		CodeCortex: NewTeamWorkflow(codeCortex, models.EventCodeCortex),
	}
}

// RegisterDataAlchemy handles the single-participant sign-up and
// returns the generated registration ID.
func (s *RegistrationService) RegisterDataAlchemy(c *fiber.Ctx) error {
	var req models.SingleRegistrationRequest
	// An empty or unparseable body leaves the request zero-valued, the
	// same as an empty form submission.
	_ = c.BodyParser(&req)

	regID := utils.GenerateID()
	reg := &models.SingleRegistration{
		Event:        models.EventDataAlchemy,
		Name:         req.Name,
		Registration: req.Registration,
		Email:        req.Email,
		Contact:      req.Contact,
		RegID:        regID,
	}
	if err := s.Singles.Create(c.Context(), reg); err != nil {
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "registration_id": regID})
}

func (s *RegistrationService) RegisterSurvival(c *fiber.Ctx) error {
	return s.createTeam(c, s.Survival)
}

func (s *RegistrationService) JoinSurvival(c *fiber.Ctx) error {
	return s.joinTeam(c, s.Survival)
}

func (s *RegistrationService) RegisterCodeCortex(c *fiber.Ctx) error {
	return s.createTeam(c, s.CodeCortex)
}

func (s *RegistrationService) JoinCodeCortex(c *fiber.Ctx) error {
	return s.joinTeam(c, s.CodeCortex)
}

func (s *RegistrationService) createTeam(c *fiber.Ctx, w *TeamWorkflow) error {
	var req models.CreateTeamRequest
	_ = c.BodyParser(&req)
	teamID, err := w.Create(c.Context(), req)
	if err != nil {
		return teamError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "team_id": teamID})
}

func (s *RegistrationService) joinTeam(c *fiber.Ctx, w *TeamWorkflow) error {
	var req models.JoinTeamRequest
	_ = c.BodyParser(&req)
	teamID, err := w.Join(c.Context(), req)
	if err != nil {
		return teamError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "team_id": teamID})
}

// teamError maps workflow failures onto the response envelope.
// Validation and business-rule failures keep HTTP 200 with an
// error-status body, as the registration pages expect; anything else
// is a storage failure.
func teamError(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return errorBody(c, verr.Message)
	case errors.Is(err, ErrTeamNotFound),
		errors.Is(err, ErrTeamFull),
		errors.Is(err, ErrDuplicateMember):
		return errorBody(c, err.Error())
	default:
		return storageError(c, err)
	}
}

func errorBody(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"status": "error", "message": message})
}

func storageError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).
		JSON(fiber.Map{"status": "error", "message": err.Error()})
}
