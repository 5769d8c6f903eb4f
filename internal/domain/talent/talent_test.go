package talent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_Listable(t *testing.T) {
	testCases := []struct {
		name     string
		status   Status
		visible  bool
		listable bool
	}{
		{"approved and visible", StatusApproved, true, true},
		{"approved but hidden", StatusApproved, false, false},
		{"pending", StatusPending, true, false},
		{"rejected", StatusRejected, true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Profile{Status: tc.status, ProfileVisible: tc.visible}
			assert.Equal(t, tc.listable, p.Listable())
		})
	}
}

func TestProfile_Validate(t *testing.T) {
	p := &Profile{FullName: "Quang Le"}
	assert.NoError(t, p.Validate())

	p.FullName = ""
	assert.ErrorIs(t, p.Validate(), ErrFullNameRequired)
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, Status("archived").Valid())
}
