// ABOUTME: Training facade with embedded-exercise sub-operations.
// ABOUTME: Exercise edits splice the parent's exercises and write back via Update.
package store

import (
	"github.com/harperreed/swim/internal/kv"
	"github.com/harperreed/swim/internal/models"
)

// Trainings manages the training collection.
type Trainings struct {
	*Repository[*models.Training]
}

// NewTrainings binds a Trainings facade to the trainings storage key.
func NewTrainings(store kv.Store) *Trainings {
	return &Trainings{newRepository(store, KeyTrainings, (*models.Training).Validate, nil)}
}

// Add normalizes nil lists to empty before storing.
func (t *Trainings) Add(tr *models.Training) (*models.Training, error) {
	tr.Normalize()
	return t.Repository.Add(tr)
}

// AddExercise appends an exercise to a training, assigning an id if the
// exercise has none. Exercise fields beyond the id are not validated; only
// the parent training's validator runs.
func (t *Trainings) AddExercise(trainingID string, ex *models.Exercise) (*models.Training, error) {
	if ex.ID == "" {
		ex.ID = models.NewID()
	}
	return t.Update(trainingID, func(tr *models.Training) {
		tr.Exercises = append(tr.Exercises, ex)
	})
}

// UpdateExercise applies mutate to the matching embedded exercise. A missing
// exercise id leaves the training unchanged but still returns it.
func (t *Trainings) UpdateExercise(trainingID, exerciseID string, mutate func(*models.Exercise)) (*models.Training, error) {
	return t.Update(trainingID, func(tr *models.Training) {
		for _, ex := range tr.Exercises {
			if ex.ID == exerciseID {
				mutate(ex)
				return
			}
		}
	})
}

// RemoveExercise splices out the matching embedded exercise.
func (t *Trainings) RemoveExercise(trainingID, exerciseID string) (*models.Training, error) {
	return t.Update(trainingID, func(tr *models.Training) {
		filtered := tr.Exercises[:0]
		for _, ex := range tr.Exercises {
			if ex.ID != exerciseID {
				filtered = append(filtered, ex)
			}
		}
		tr.Exercises = filtered
	})
}
