package core_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/odourcollect/ocdata/pkg/core"
)

// MockSource implements core.Source in memory.
type MockSource struct {
	table *core.Table
	err   error
}

func (m *MockSource) Load(ctx context.Context) (*core.Table, error) {
	return m.table, m.err
}

func (m *MockSource) Name() string { return "mock" }

func castOnly(t *testing.T) *core.Registry {
	t.Helper()
	r := core.NewRegistry()
	err := r.Register(core.FilterTypeCasting, func(tbl *core.Table) (*core.Table, error) {
		return tbl, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestNewDataset(t *testing.T) {
	tbl, _ := core.NewTable([]string{"Day"})
	_ = tbl.AppendRow([]string{"2023-05-01"})
	src := &MockSource{table: tbl}

	ds, err := core.NewDataset(context.TODO(), src, core.ProfileAnalysis, castOnly(t), nil)
	if err != nil {
		t.Fatalf("NewDataset failed: %v", err)
	}
	if ds.Name() != "mock" {
		t.Errorf("expected name 'mock', got %q", ds.Name())
	}
	if ds.Profile() != core.ProfileAnalysis {
		t.Errorf("expected analysis profile, got %q", ds.Profile())
	}
	if ds.Table().Rows() != 1 {
		t.Errorf("expected 1 row, got %d", ds.Table().Rows())
	}
}

func TestNewDataset_UnknownProfile(t *testing.T) {
	src := &MockSource{}
	_, err := core.NewDataset(context.TODO(), src, core.Profile("bogus"), castOnly(t), nil)
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestNewDataset_LoadFailure(t *testing.T) {
	src := &MockSource{err: errors.New("disk gone")}
	_, err := core.NewDataset(context.TODO(), src, core.ProfileAnalysis, castOnly(t), nil)
	if err == nil {
		t.Fatal("expected load error to propagate")
	}
	if !strings.Contains(err.Error(), "mock") {
		t.Errorf("error should mention the source: %v", err)
	}
}

func TestDataset_State(t *testing.T) {
	tbl, _ := core.NewTable([]string{"Day", "Time"})
	src := &MockSource{table: tbl}

	ds, err := core.NewDataset(context.TODO(), src, core.ProfileAnalysis, castOnly(t), nil)
	if err != nil {
		t.Fatalf("NewDataset failed: %v", err)
	}

	state, ok := ds.State().(core.DatasetState)
	if !ok {
		t.Fatalf("unexpected state type %T", ds.State())
	}
	if state.Profile != "analysis" {
		t.Errorf("expected profile 'analysis', got %q", state.Profile)
	}
	if len(state.Columns) != 2 {
		t.Errorf("expected 2 columns in state, got %v", state.Columns)
	}
	if ds.ComponentType() != "dataset" {
		t.Errorf("unexpected component type %q", ds.ComponentType())
	}
}

func TestProfile_FilterList(t *testing.T) {
	obs := core.ProfileObservation.FilterList()
	want := []string{
		core.FilterFixTypos,
		core.FilterFixUserIDs,
		core.FilterOdourLiteralsToNumbers,
		core.FilterAddAnalystFields,
		core.FilterTypeCasting,
	}
	if len(obs) != len(want) {
		t.Fatalf("observation list: expected %d filters, got %v", len(want), obs)
	}
	for i := range want {
		if obs[i] != want[i] {
			t.Fatalf("observation list order: expected %v, got %v", want, obs)
		}
	}

	ana := core.ProfileAnalysis.FilterList()
	if len(ana) != 1 || ana[0] != core.FilterTypeCasting {
		t.Errorf("analysis list: expected [type_casting], got %v", ana)
	}

	if core.Profile("nope").FilterList() != nil {
		t.Error("unknown profile should have a nil filter list")
	}
}

func TestParseProfile(t *testing.T) {
	if _, err := core.ParseProfile("observation"); err != nil {
		t.Errorf("observation should parse: %v", err)
	}
	if _, err := core.ParseProfile("analysis"); err != nil {
		t.Errorf("analysis should parse: %v", err)
	}
	if _, err := core.ParseProfile("raw"); err == nil {
		t.Error("expected error for unknown profile name")
	}
}
