package model_test

import (
	"testing"
	"time"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func testProblem(eventID string) model.Problem {
	p := model.NewProblem(
		types.EventID(eventID),
		types.TriggerID("7001"),
		"High CPU utilization",
		model.SeverityHigh,
		time.Unix(1756700000, 0),
	)
	p.Host = "web-01"
	return p
}

func TestNewProblemDefaultsHost(t *testing.T) {
	p := model.NewProblem(
		types.EventID("42"),
		types.TriggerID("7"),
		"Disk space low",
		model.SeverityWarning,
		time.Unix(1756700000, 0),
	)

	gt.Equal(t, p.Host, model.UnknownHost)
	gt.V(t, p.Host).NotEqual("")
}

func TestProblemEqual(t *testing.T) {
	a := testProblem("100")
	b := testProblem("100")
	gt.True(t, a.Equal(b))

	t.Run("differs by event ID", func(t *testing.T) {
		c := testProblem("101")
		gt.False(t, a.Equal(c))
	})

	t.Run("differs by severity", func(t *testing.T) {
		c := testProblem("100")
		c.Severity = model.SeverityDisaster
		gt.False(t, a.Equal(c))
	})

	t.Run("differs by host", func(t *testing.T) {
		c := testProblem("100")
		c.Host = "web-02"
		gt.False(t, a.Equal(c))
	})

	t.Run("differs by timestamp", func(t *testing.T) {
		c := testProblem("100")
		c.OccurredAt = c.OccurredAt.Add(time.Second)
		gt.False(t, a.Equal(c))
	})
}

func TestEqualProblems(t *testing.T) {
	a := []model.Problem{testProblem("100"), testProblem("99")}
	b := []model.Problem{testProblem("100"), testProblem("99")}
	gt.True(t, model.EqualProblems(a, b))

	t.Run("order matters", func(t *testing.T) {
		c := []model.Problem{testProblem("99"), testProblem("100")}
		gt.False(t, model.EqualProblems(a, c))
	})

	t.Run("length matters", func(t *testing.T) {
		gt.False(t, model.EqualProblems(a, a[:1]))
	})

	t.Run("both empty", func(t *testing.T) {
		gt.True(t, model.EqualProblems(nil, []model.Problem{}))
	})
}

func TestSnapshot(t *testing.T) {
	now := time.Unix(1756700000, 0)
	s := model.NewSnapshot([]model.Problem{testProblem("1")}, types.ChangeNewlyActive, now)

	gt.Equal(t, s.Count(), 1)
	gt.True(t, s.HasProblems())
	gt.Equal(t, s.FetchedAt, now)

	empty := model.NewSnapshot(nil, types.ChangeAllClear, now)
	gt.Equal(t, empty.Count(), 0)
	gt.False(t, empty.HasProblems())
}
