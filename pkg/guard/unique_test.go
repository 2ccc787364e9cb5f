package guard

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var errTaken = errors.New("taken")

func TestAssertUnique(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	tests := []struct {
		name     string
		existing []uuid.UUID
		exclude  uuid.UUID
		wantErr  bool
	}{
		{name: "nothing found on create", existing: nil, exclude: uuid.Nil},
		{name: "found on create", existing: []uuid.UUID{other}, exclude: uuid.Nil, wantErr: true},
		{name: "only self on update", existing: []uuid.UUID{self}, exclude: self},
		{name: "other record on update", existing: []uuid.UUID{other}, exclude: self, wantErr: true},
		{name: "self and other on update", existing: []uuid.UUID{self, other}, exclude: self, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssertUnique(tt.existing, tt.exclude, errTaken)
			if tt.wantErr {
				assert.ErrorIs(t, err, errTaken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
