package total_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/ollama-total/internal/app/total"
	"github.com/slok/ollama-total/internal/model"
	"github.com/slok/ollama-total/internal/ollama/ollamamock"
)

func TestServiceTotal(t *testing.T) {
	tests := map[string]struct {
		mock     func(m *ollamamock.MockLister)
		expTotal string
	}{
		"Mixed units should be summed and shown in the largest unit.": {
			mock: func(m *ollamamock.MockLister) {
				m.On("List", mock.Anything).Once().Return("NAME SIZE\nmodelA 2.7 GB\nmodelB 800 MB\n", nil)
			},
			expTotal: "3.5 GB",
		},

		"A single megabyte model should be shown in megabytes.": {
			mock: func(m *ollamamock.MockLister) {
				m.On("List", mock.Anything).Once().Return("NAME SIZE\nmodelA 500 MB\n", nil)
			},
			expTotal: "500.0 MB",
		},

		"No models should be zero bytes.": {
			mock: func(m *ollamamock.MockLister) {
				m.On("List", mock.Anything).Once().Return("NAME SIZE\n", nil)
			},
			expTotal: "0 B",
		},

		"A terabyte total should be shown in terabytes.": {
			mock: func(m *ollamamock.MockLister) {
				m.On("List", mock.Anything).Once().Return("NAME SIZE\na 600 GB\nb 400 GB\n", nil)
			},
			expTotal: "1.0 TB",
		},

		"A failing command should return an error message with the command name.": {
			mock: func(m *ollamamock.MockLister) {
				m.On("List", mock.Anything).Once().Return("", &model.CommandError{
					Command:  "ollama list",
					ExitCode: 1,
					Output:   "Error: could not connect to ollama app, is it running?",
				})
			},
			expTotal: "Error running ollama list: exit status 1: Error: could not connect to ollama app, is it running?",
		},

		"A failing command without output should return the exit status.": {
			mock: func(m *ollamamock.MockLister) {
				m.On("List", mock.Anything).Once().Return("", fmt.Errorf("wrapped: %w", &model.CommandError{Command: "ollama list", ExitCode: 127}))
			},
			expTotal: "Error running ollama list: exit status 127",
		},

		"Any other listing error should return an unexpected error message.": {
			mock: func(m *ollamamock.MockLister) {
				m.On("List", mock.Anything).Once().Return("", fmt.Errorf("executable file not found in $PATH"))
			},
			expTotal: "Unexpected error: could not list models: executable file not found in $PATH",
		},

		"Undecodable output should return an unexpected error message.": {
			mock: func(m *ollamamock.MockLister) {
				m.On("List", mock.Anything).Once().Return("NAME SIZE\n\xff\xfe 1 GB\n", nil)
			},
			expTotal: "Unexpected error: could not parse model listing: listing output is not valid UTF-8",
		},

		"A panic should be returned as an unexpected error message.": {
			mock: func(m *ollamamock.MockLister) {
				m.On("List", mock.Anything).Once().Run(func(_ mock.Arguments) { panic("something broke") })
			},
			expTotal: "Unexpected error: something broke",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m := ollamamock.NewMockLister(t)
			test.mock(m)

			svc, err := total.NewService(total.ServiceConfig{Lister: m})
			require.NoError(t, err)

			assert.Equal(t, test.expTotal, svc.Total(context.Background()))
		})
	}
}

func TestServiceRun(t *testing.T) {
	m := ollamamock.NewMockLister(t)
	m.On("List", mock.Anything).Once().Return("NAME ID SIZE MODIFIED\nllama3.2:latest a80c4f17acd5 2.0 GB 3 weeks ago\nbroken row\n", nil)

	svc, err := total.NewService(total.ServiceConfig{Lister: m})
	require.NoError(t, err)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, report.Models, 1)
	assert.Equal(t, "llama3.2:latest", report.Models[0].Name)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "2000000000", report.TotalBytes.String())
}

func TestNewServiceRequiresLister(t *testing.T) {
	_, err := total.NewService(total.ServiceConfig{})
	assert.Error(t, err)
}
