package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"event-registration-system/models"
	"event-registration-system/store"
)

func setupWorkflow(t *testing.T) *TeamWorkflow {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err, "Failed to open test database")

	ts := store.NewTeamStore(db, store.TableSurvival)
	require.NoError(t, ts.Migrate())
	return NewTeamWorkflow(ts, models.EventSurvival)
}

func createReq(teamName string, size int, reg string) models.CreateTeamRequest {
	return models.CreateTeamRequest{
		TeamName:     teamName,
		TeamSize:     size,
		Name:         "Member " + reg,
		Registration: reg,
		Email:        reg + "@x.com",
		Contact:      "111",
	}
}

func joinReq(teamID, reg string) models.JoinTeamRequest {
	return models.JoinTeamRequest{
		TeamID:       teamID,
		Name:         "Member " + reg,
		Registration: reg,
		Email:        reg + "@x.com",
		Contact:      "222",
	}
}

func TestCreate_ValidSizes(t *testing.T) {
	for size := MinTeamSize; size <= MaxTeamSize; size++ {
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			w := setupWorkflow(t)
			ctx := context.Background()

			teamID, err := w.Create(ctx, createReq("Alpha", size, fmt.Sprintf("R%d", size)))
			require.NoError(t, err)
			require.Len(t, teamID, 4)

			team, err := w.Store.FindByTeamID(ctx, teamID)
			require.NoError(t, err)
			require.Equal(t, models.EventSurvival, team.Event)
			require.Equal(t, size, team.TeamSize)
			require.Len(t, team.Members, 1, "a new team holds only its leader")
			require.Equal(t, fmt.Sprintf("R%d", size), team.Members[0].Registration)
		})
	}
}

func TestCreate_SizeOutOfBounds(t *testing.T) {
	w := setupWorkflow(t)
	ctx := context.Background()

	for _, size := range []int{1, 5} {
		_, err := w.Create(ctx, createReq("Team", size, "R1"))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Team size must be between 2 and 4.", verr.Message)
	}

	teams, err := w.Store.FindAll(ctx)
	require.NoError(t, err)
	require.Empty(t, teams, "rejected creates must not persist anything")
}

func TestCreate_MissingFields(t *testing.T) {
	w := setupWorkflow(t)
	ctx := context.Background()

	reqs := []models.CreateTeamRequest{
		{},
		{TeamName: "Alpha", TeamSize: 3, Name: "A", Registration: "R1", Email: "a@x.com"},
		{TeamSize: 3, Name: "A", Registration: "R1", Email: "a@x.com", Contact: "111"},
	}
	for _, req := range reqs {
		_, err := w.Create(ctx, req)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "All fields are required.", verr.Message)
	}
}

func TestJoin_UnknownTeam(t *testing.T) {
	w := setupWorkflow(t)

	_, err := w.Join(context.Background(), joinReq("9999", "R2"))
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestJoin_MissingFields(t *testing.T) {
	w := setupWorkflow(t)

	_, err := w.Join(context.Background(), models.JoinTeamRequest{TeamID: "1234", Name: "A"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "All fields are required.", verr.Message)
}

func TestJoin_DuplicateMember(t *testing.T) {
	w := setupWorkflow(t)
	ctx := context.Background()

	teamID, err := w.Create(ctx, createReq("Alpha", 3, "R1"))
	require.NoError(t, err)

	_, err = w.Join(ctx, joinReq(teamID, "R1"))
	require.ErrorIs(t, err, ErrDuplicateMember)

	team, err := w.Store.FindByTeamID(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, team.Members, 1, "failed join must leave members unchanged")
}

func TestJoin_FillsThenRejects(t *testing.T) {
	w := setupWorkflow(t)
	ctx := context.Background()

	teamID, err := w.Create(ctx, createReq("Alpha", 3, "R1"))
	require.NoError(t, err)

	for _, reg := range []string{"R2", "R3"} {
		echoed, err := w.Join(ctx, joinReq(teamID, reg))
		require.NoError(t, err)
		require.Equal(t, teamID, echoed)
	}

	_, err = w.Join(ctx, joinReq(teamID, "R4"))
	require.ErrorIs(t, err, ErrTeamFull)

	team, err := w.Store.FindByTeamID(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, team.Members, 3)
	require.Equal(t, []string{"R1", "R2", "R3"}, memberRegs(team), "join order is preserved")
}

// Worked end-to-end example: create, join, duplicate, fill, overflow.
func TestWorkflow_CreateJoinLifecycle(t *testing.T) {
	w := setupWorkflow(t)
	ctx := context.Background()

	teamID, err := w.Create(ctx, models.CreateTeamRequest{
		TeamName: "Alpha", TeamSize: 3,
		Name: "A", Registration: "R1", Email: "a@x.com", Contact: "111",
	})
	require.NoError(t, err)
	require.Regexp(t, `^\d{4}$`, teamID)

	_, err = w.Join(ctx, joinReq(teamID, "R2"))
	require.NoError(t, err)
	team, err := w.Store.FindByTeamID(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, team.Members, 2)

	_, err = w.Join(ctx, joinReq(teamID, "R2"))
	require.ErrorIs(t, err, ErrDuplicateMember)

	_, err = w.Join(ctx, joinReq(teamID, "R3"))
	require.NoError(t, err)
	_, err = w.Join(ctx, joinReq(teamID, "R4"))
	require.ErrorIs(t, err, ErrTeamFull)
}

func memberRegs(team *models.TeamRegistration) []string {
	regs := make([]string, len(team.Members))
	for i, m := range team.Members {
		regs[i] = m.Registration
	}
	return regs
}
