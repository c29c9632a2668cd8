package models

import (
	"errors"
	"fmt"

	"github.com/cmlsolutions-1/sgi-sub000/catalog"
)

// ErrNotReady marks a record that fails the save-readiness precondition. The
// calling form checks this before handing the record to the store; it is not
// raised by the engine itself.
var ErrNotReady = errors.New("record not ready to save")

// RiskValidator checks save-readiness preconditions.
type RiskValidator struct{}

// ValidateSave reports why a record cannot be saved yet. All context and
// hazard fields must be filled in and the description must belong to the
// selected category. Level keys are not validated here: an unmapped key is
// savable and simply classifies as not assessed.
func (v *RiskValidator) ValidateSave(r *RiskRecord) error {
	if r.Process == "" {
		return fmt.Errorf("%w: process is required", ErrNotReady)
	}
	if r.Location == "" {
		return fmt.Errorf("%w: location is required", ErrNotReady)
	}
	if r.Activity == "" {
		return fmt.Errorf("%w: activity is required", ErrNotReady)
	}
	if r.Tasks == "" {
		return fmt.Errorf("%w: tasks are required", ErrNotReady)
	}
	if r.HazardCategory == "" {
		return fmt.Errorf("%w: hazard category is required", ErrNotReady)
	}
	if r.HazardDescription == "" {
		return fmt.Errorf("%w: hazard description is required", ErrNotReady)
	}
	if !catalog.ValidDescription(r.HazardCategory, r.HazardDescription) {
		return fmt.Errorf("%w: hazard description does not belong to category %s", ErrNotReady, r.HazardCategory)
	}
	return nil
}
