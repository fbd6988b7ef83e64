package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"event-registration-system/models"
	"event-registration-system/store"
)

// Registration kinds in the merged admin listing.
const (
	KindSingle = "single"
	KindTeam   = "team"
)

// AdminService serves the admin panel: merged and per-collection
// listings, plus update/delete by storage key.
type AdminService struct {
	Singles    *store.SingleStore
	Survival   *store.TeamStore
	CodeCortex *store.TeamStore
}

func NewAdminService(singles *store.SingleStore, survival, codeCortex *store.TeamStore) *AdminService {
	return &AdminService{Singles: singles, Survival: survival, CodeCortex: codeCortex}
}

type taggedSingle struct {
	models.SingleRegistration
	Type string `json:"type"`
}

type taggedTeam struct {
	models.TeamRegistration
	Type string `json:"type"`
}

// GetAllRegistrations reads all three collections concurrently and
// returns one kind-tagged list: singles first, then survival teams,
// then code cortex teams. Any failed read fails the whole response.
func (s *AdminService) GetAllRegistrations(c *fiber.Ctx) error {
	var (
		singles  []models.SingleRegistration
		survival []models.TeamRegistration
		cortex   []models.TeamRegistration
	)

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		var err error
		singles, err = s.Singles.FindAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		survival, err = s.Survival.FindAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		cortex, err = s.CodeCortex.FindAll(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return storageError(c, err)
	}

	merged := make([]any, 0, len(singles)+len(survival)+len(cortex))
	for _, reg := range singles {
		merged = append(merged, taggedSingle{SingleRegistration: reg, Type: KindSingle})
	}
	for _, team := range survival {
		merged = append(merged, taggedTeam{TeamRegistration: team, Type: KindTeam})
	}
	for _, team := range cortex {
		merged = append(merged, taggedTeam{TeamRegistration: team, Type: KindTeam})
	}
	return c.JSON(merged)
}

func (s *AdminService) GetDataRegs(c *fiber.Ctx) error {
	regs, err := s.Singles.FindAll(c.Context())
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(regs)
}

func (s *AdminService) GetSurvivalRegs(c *fiber.Ctx) error {
	return listTeams(c, s.Survival)
}

func (s *AdminService) GetCodeCortexRegs(c *fiber.Ctx) error {
	return listTeams(c, s.CodeCortex)
}

func listTeams(c *fiber.Ctx, ts *store.TeamStore) error {
	teams, err := ts.FindAll(c.Context())
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(teams)
}

// UpdateSingle patches one Data Alchemy registration by storage key.
func (s *AdminService) UpdateSingle(c *fiber.Ctx) error {
	patch, err := parsePatch(c)
	if err != nil {
		return errorBody(c, "Invalid request body.")
	}
	updated, err := s.Singles.UpdateByID(c.Context(), c.Params("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": updated})
}

// UpdateTeam patches one team registration by storage key. The key
// does not say which team collection it belongs to, so survival is
// probed first and code cortex second; only a miss in both is a 404.
func (s *AdminService) UpdateTeam(c *fiber.Ctx) error {
	patch, err := parsePatch(c)
	if err != nil {
		return errorBody(c, "Invalid request body.")
	}
	id := c.Params("id")

	updated, err := s.Survival.UpdateByID(c.Context(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		updated, err = s.CodeCortex.UpdateByID(c.Context(), id, patch)
	}
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return storageError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": updated})
}

func (s *AdminService) DeleteSingle(c *fiber.Ctx) error {
	err := s.Singles.DeleteByID(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return storageError(c, err)
	}
	return deleted(c)
}

// DeleteTeam removes one team registration by storage key, probing the
// collections in the same order as UpdateTeam.
func (s *AdminService) DeleteTeam(c *fiber.Ctx) error {
	id := c.Params("id")

	err := s.Survival.DeleteByID(c.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		err = s.CodeCortex.DeleteByID(c.Context(), id)
	}
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return storageError(c, err)
	}
	return deleted(c)
}

func parsePatch(c *fiber.Ctx) (map[string]any, error) {
	patch := map[string]any{}
	if len(c.Body()) == 0 {
		return patch, nil
	}
	if err := c.BodyParser(&patch); err != nil {
		return nil, err
	}
	return patch, nil
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).
		JSON(fiber.Map{"status": "error", "message": "Registration not found"})
}

func deleted(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "message": "Registration deleted successfully"})
}
