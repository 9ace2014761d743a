package nutrition

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/adapter/sqlite"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

// ProfileRepo provides nutrition-profile persistence. The profile is a
// singleton per scope: Save upserts on the owner column, so there is never
// more than one row to Get.
type ProfileRepo struct {
	mgr *sqlite.Manager
}

// NewProfileRepo creates a new nutrition-profile repository.
func NewProfileRepo(mgr *sqlite.Manager) *ProfileRepo {
	return &ProfileRepo{mgr: mgr}
}

// ---------------------------------------------------------------------------
// Row model
// ---------------------------------------------------------------------------

var profileColumns = []string{
	"id", "calories_target", "protein_target_g", "carbs_target_g",
	"fat_target_g", "water_target_ml", "diet_tag", "created_at", "updated_at",
}

type profileRow struct {
	ID             string   `db:"id"`
	CaloriesTarget *float64 `db:"calories_target"`
	ProteinTargetG *float64 `db:"protein_target_g"`
	CarbsTargetG   *float64 `db:"carbs_target_g"`
	FatTargetG     *float64 `db:"fat_target_g"`
	WaterTargetML  *int64   `db:"water_target_ml"`
	DietTag        *string  `db:"diet_tag"`
	CreatedAt      int64    `db:"created_at"`
	UpdatedAt      int64    `db:"updated_at"`
}

func toDomainProfile(r profileRow) domain.NutritionProfile {
	return domain.NutritionProfile{
		ID:             r.ID,
		CaloriesTarget: r.CaloriesTarget,
		ProteinTargetG: r.ProteinTargetG,
		CarbsTargetG:   r.CarbsTargetG,
		FatTargetG:     r.FatTargetG,
		WaterTargetML:  r.WaterTargetML,
		DietTag:        r.DietTag,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Get returns the scope's profile, or domain.ErrNotFound if none was saved.
func (r *ProfileRepo) Get(ctx context.Context, scope domain.Scope) (domain.NutritionProfile, error) {
	db, err := r.mgr.Get()
	if err != nil {
		return domain.NutritionProfile{}, err
	}

	query, args, err := sqlite.ScopedSelect(sqlite.TableNutritionProfiles, scope, profileColumns...).
		ToSql()
	if err != nil {
		return domain.NutritionProfile{}, fmt.Errorf("get nutrition profile: build: %w", err)
	}

	var rw profileRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, db), &rw, query, args...); err != nil {
		return domain.NutritionProfile{}, sqlite.MapError(err, "nutrition profile", "")
	}

	return toDomainProfile(rw), nil
}

// Save inserts the scope's profile or, if one exists, replaces every column
// except the owner. The stored id follows the incoming record.
func (r *ProfileRepo) Save(ctx context.Context, scope domain.Scope, profile domain.NutritionProfile) error {
	if profile.ID == "" {
		return domain.NewValidationError("id", "must not be empty")
	}

	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.Builder().
		Insert(sqlite.TableNutritionProfiles).
		Columns(append([]string{sqlite.OwnerColumn}, profileColumns...)...).
		Values(scope.OwnerID(), profile.ID, profile.CaloriesTarget, profile.ProteinTargetG,
			profile.CarbsTargetG, profile.FatTargetG, profile.WaterTargetML, profile.DietTag,
			profile.CreatedAt, profile.UpdatedAt).
		Suffix(`ON CONFLICT (owner_user_id) DO UPDATE
			SET id = EXCLUDED.id,
			    calories_target = EXCLUDED.calories_target,
			    protein_target_g = EXCLUDED.protein_target_g,
			    carbs_target_g = EXCLUDED.carbs_target_g,
			    fat_target_g = EXCLUDED.fat_target_g,
			    water_target_ml = EXCLUDED.water_target_ml,
			    diet_tag = EXCLUDED.diet_tag,
			    created_at = EXCLUDED.created_at,
			    updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("save nutrition profile: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "nutrition profile", profile.ID)
	}

	return nil
}

// Delete removes the scope's profile. Deleting when none exists is not an
// error.
func (r *ProfileRepo) Delete(ctx context.Context, scope domain.Scope) error {
	db, err := r.mgr.Get()
	if err != nil {
		return err
	}

	query, args, err := sqlite.ScopedDelete(sqlite.TableNutritionProfiles, scope).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete nutrition profile: build: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "nutrition profile", "")
	}

	return nil
}
