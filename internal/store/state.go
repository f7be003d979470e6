package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

const (
	// StateKey names the persisted layout document in every backend.
	StateKey = "layout-store"
	// StateVersion is the schema version written by Save.
	StateVersion = 1
)

// envelope is the persisted form of the layout state.
type envelope struct {
	State   models.LayoutState `firestore:"state" json:"state"`
	Version int                `firestore:"version" json:"version"`
}

func newEnvelope(state models.LayoutState) envelope {
	return envelope{State: state, Version: StateVersion}
}

func encodeEnvelope(state models.LayoutState) ([]byte, error) {
	data, err := json.Marshal(newEnvelope(state))
	if err != nil {
		return nil, errs.NewDatabaseError("write", "failed to encode layout state", err)
	}
	return data, nil
}

func decodeEnvelope(data []byte) (*models.LayoutState, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errs.NewValidationError("unreadable layout state: " + err.Error())
	}
	return env.upgrade(time.Now())
}

// migration upgrades a state persisted at one version to the next.
type migration func(state *models.LayoutState, now time.Time)

// migrations is keyed by the version a migration upgrades from.
var migrations = map[int]migration{
	0: migrateV0,
}

func (e envelope) upgrade(now time.Time) (*models.LayoutState, error) {
	if e.Version > StateVersion {
		return nil, errs.NewValidationError(fmt.Sprintf("unsupported layout state version %d (max %d)", e.Version, StateVersion))
	}
	state := e.State
	for v := e.Version; v < StateVersion; v++ {
		m, ok := migrations[v]
		if !ok {
			return nil, errs.NewValidationError(fmt.Sprintf("no migration from layout state version %d", v))
		}
		m(&state, now)
	}
	ensureDefaultLayout(&state, now)
	return &state, nil
}

// migrateV0 upgrades unversioned state: layouts saved before the column count was
// stored get the default grid, and the seed layout is restored as the only default.
func migrateV0(state *models.LayoutState, _ time.Time) {
	for i := range state.Layouts {
		l := &state.Layouts[i]
		if l.GridSize <= 0 {
			l.GridSize = models.DefaultGridSize
		}
		l.IsDefault = l.ID == models.DefaultLayoutID
	}
}

// ensureDefaultLayout restores the seed layout when no layout is flagged default
// and points an empty current id at the default layout.
func ensureDefaultLayout(state *models.LayoutState, now time.Time) {
	defaultID := ""
	for _, l := range state.Layouts {
		if l.IsDefault {
			defaultID = l.ID
			break
		}
	}
	if defaultID == "" {
		if i := state.LayoutIndex(models.DefaultLayoutID); i >= 0 {
			state.Layouts[i].IsDefault = true
		} else {
			state.Layouts = append([]models.DashboardLayout{models.DefaultLayout(now)}, state.Layouts...)
		}
		defaultID = models.DefaultLayoutID
	}
	if state.CurrentLayoutID == "" {
		state.CurrentLayoutID = defaultID
	}
}
