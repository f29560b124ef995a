package generate_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/slok/sheetgantt/internal/app/generate"
	"github.com/slok/sheetgantt/internal/chart"
	"github.com/slok/sheetgantt/internal/chart/chartmock"
	"github.com/slok/sheetgantt/internal/log"
	"github.com/slok/sheetgantt/internal/model"
	"github.com/slok/sheetgantt/internal/sheet"
	"github.com/slok/sheetgantt/internal/storage/memory"
	"github.com/slok/sheetgantt/internal/storage/storagemock"
)

func testPNG(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 4))))
	return buf.Bytes()
}

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config generate.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: generate.ServiceConfig{
				Repository: &storagemock.MockTaskRepository{},
				Renderer:   &chartmock.MockRenderer{},
				Logger:     log.Noop,
			},
			expErr: false,
		},
		"missing repository should fail": {
			config: generate.ServiceConfig{
				Renderer: &chartmock.MockRenderer{},
			},
			expErr: true,
		},
		"missing renderer should fail": {
			config: generate.ServiceConfig{
				Repository: &storagemock.MockTaskRepository{},
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			svc, err := generate.NewService(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(svc)
			} else {
				require.NoError(err)
				require.NotNil(svc)
			}
		})
	}
}

func TestService_Run(t *testing.T) {
	now := time.Date(2023, 11, 6, 9, 30, 0, 0, time.UTC)
	tasks := memory.DefaultTasks()

	tests := map[string]struct {
		mock      func(t *testing.T, r *storagemock.MockTaskRepository, c *chartmock.MockRenderer)
		req       func(dir string) generate.Request
		expSheet  string
		expErr    bool
		expNoFile bool
	}{
		"generating a report with defaults should write the table and the chart": {
			mock: func(t *testing.T, r *storagemock.MockTaskRepository, c *chartmock.MockRenderer) {
				r.On("ListTasks", mock.Anything).Once().Return(tasks, nil)
				c.On("RenderGantt", mock.Anything, chart.DefaultTitle, tasks).Once().Return(testPNG(t), nil)
			},
			req: func(dir string) generate.Request {
				return generate.Request{OutputPath: filepath.Join(dir, "report.xlsx")}
			},
			expSheet: sheet.DefaultSheetName,
		},

		"custom title and sheet name should be used": {
			mock: func(t *testing.T, r *storagemock.MockTaskRepository, c *chartmock.MockRenderer) {
				r.On("ListTasks", mock.Anything).Once().Return(tasks, nil)
				c.On("RenderGantt", mock.Anything, "Q4 plan", tasks).Once().Return(testPNG(t), nil)
			},
			req: func(dir string) generate.Request {
				return generate.Request{
					OutputPath: filepath.Join(dir, "q4", "plan.xlsx"),
					Title:      "Q4 plan",
					SheetName:  "Q4",
				}
			},
			expSheet: "Q4",
		},

		"repository error should propagate": {
			mock: func(t *testing.T, r *storagemock.MockTaskRepository, c *chartmock.MockRenderer) {
				r.On("ListTasks", mock.Anything).Once().Return(nil, fmt.Errorf("something"))
			},
			req: func(dir string) generate.Request {
				return generate.Request{OutputPath: filepath.Join(dir, "report.xlsx")}
			},
			expErr:    true,
			expNoFile: true,
		},

		"no tasks should fail": {
			mock: func(t *testing.T, r *storagemock.MockTaskRepository, c *chartmock.MockRenderer) {
				r.On("ListTasks", mock.Anything).Once().Return([]model.Task{}, nil)
			},
			req: func(dir string) generate.Request {
				return generate.Request{OutputPath: filepath.Join(dir, "report.xlsx")}
			},
			expErr:    true,
			expNoFile: true,
		},

		"invalid tasks should fail": {
			mock: func(t *testing.T, r *storagemock.MockTaskRepository, c *chartmock.MockRenderer) {
				r.On("ListTasks", mock.Anything).Once().Return([]model.Task{
					{Name: "bad", Start: model.MustParseDate("2023-10-02"), End: model.MustParseDate("2023-10-01")},
				}, nil)
			},
			req: func(dir string) generate.Request {
				return generate.Request{OutputPath: filepath.Join(dir, "report.xlsx")}
			},
			expErr:    true,
			expNoFile: true,
		},

		"renderer error should propagate": {
			mock: func(t *testing.T, r *storagemock.MockTaskRepository, c *chartmock.MockRenderer) {
				r.On("ListTasks", mock.Anything).Once().Return(tasks, nil)
				c.On("RenderGantt", mock.Anything, mock.Anything, mock.Anything).Once().Return(nil, fmt.Errorf("something"))
			},
			req: func(dir string) generate.Request {
				return generate.Request{OutputPath: filepath.Join(dir, "report.xlsx")}
			},
			expErr:    true,
			expNoFile: true,
		},

		"non xlsx output should fail": {
			mock: func(t *testing.T, r *storagemock.MockTaskRepository, c *chartmock.MockRenderer) {},
			req: func(dir string) generate.Request {
				return generate.Request{OutputPath: filepath.Join(dir, "report.csv")}
			},
			expErr:    true,
			expNoFile: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			// Setup
			mr := &storagemock.MockTaskRepository{}
			mc := &chartmock.MockRenderer{}
			test.mock(t, mr, mc)

			svc, err := generate.NewService(generate.ServiceConfig{
				Repository:  mr,
				Renderer:    mc,
				Logger:      log.Noop,
				TimeNowFunc: func() time.Time { return now },
				IDFunc:      func() string { return "01HEXAMPLE0000000000000000" },
			})
			require.NoError(err)

			// Execute
			req := test.req(t.TempDir())
			result, err := svc.Run(context.Background(), req)

			// Verify
			if test.expErr {
				assert.Error(err)
				if test.expNoFile {
					_, statErr := os.Stat(req.OutputPath)
					assert.True(os.IsNotExist(statErr))
				}
			} else {
				require.NoError(err)

				assert.Equal(req.OutputPath, result.Path)
				assert.Equal("01HEXAMPLE0000000000000000", result.Report.ID)
				assert.Equal(now, result.Report.CreatedAt)
				assert.Equal(len(tasks)+1, result.Rows)
				assert.Greater(result.SizeBytes, int64(0))

				f, err := excelize.OpenFile(req.OutputPath)
				require.NoError(err)
				defer f.Close()

				rows, err := f.GetRows(test.expSheet)
				require.NoError(err)
				assert.Len(rows, len(tasks)+1)
				for i, task := range tasks {
					assert.Equal(fmt.Sprint(task.DurationDays()), rows[i+1][3])
					assert.Equal(fmt.Sprintf("%d%%", task.Completion), rows[i+1][4])
				}

				pics, err := f.GetPictures(test.expSheet, sheet.ChartCell(len(tasks)))
				require.NoError(err)
				assert.Len(pics, 1)

				props, err := f.GetDocProps()
				require.NoError(err)
				assert.Equal("01HEXAMPLE0000000000000000", props.Identifier)
			}

			mr.AssertExpectations(t)
			mc.AssertExpectations(t)
		})
	}
}
