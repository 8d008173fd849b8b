package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgstats/org-stats/internal/domain"
)

func TestFromArgs(t *testing.T) {
	targets := FromArgs([]string{"acme", "golang"})

	assert.Equal(t, []domain.Target{
		{Account: "acme", Label: "acme"},
		{Account: "golang", Label: "golang"},
	}, targets)
}

func TestFromFile(t *testing.T) {
	testCases := []struct {
		name            string
		content         string
		expectedTargets []domain.Target
	}{
		{
			name:    "two columns - second column is the display label",
			content: "acme-oss\tAcme\nacme-labs\tAcme\n",
			expectedTargets: []domain.Target{
				{Account: "acme-oss", Label: "Acme"},
				{Account: "acme-labs", Label: "Acme"},
			},
		},
		{
			name:    "single column - account name doubles as the label",
			content: "solo\n",
			expectedTargets: []domain.Target{
				{Account: "solo", Label: "solo"},
			},
		},
		{
			name:    "blank lines and surrounding whitespace are skipped",
			content: "\n  acme\tAcme Corp  \n\n\ngolang\n",
			expectedTargets: []domain.Target{
				{Account: "acme", Label: "Acme Corp"},
				{Account: "golang", Label: "golang"},
			},
		},
		{
			name:            "empty file yields no targets",
			content:         "",
			expectedTargets: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "targets.tsv")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			targets, err := FromFile(path)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedTargets, targets)
		})
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	targets, err := FromFile(filepath.Join(t.TempDir(), "no-such-file.tsv"))

	assert.Error(t, err)
	assert.ErrorContains(t, err, "failed to open targets file")
	assert.Nil(t, targets)
}
