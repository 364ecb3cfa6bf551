package classify

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tsawler/docquery/model"
)

func text(id, content string) *model.Text {
	return &model.Text{Self: model.ElementID(id), Text: content}
}

func table(id string, firstRow ...string) *model.Table {
	grid := [][]string{firstRow, {"1", "2"}}
	return &model.Table{
		Self: model.ElementID(id),
		Data: model.TableData{NumRows: 2, NumCols: len(firstRow)},
		Grid: func(ctx context.Context) ([][]string, error) {
			return grid, nil
		},
	}
}

func brokenTable(id string) *model.Table {
	return &model.Table{
		Self: model.ElementID(id),
		Grid: func(ctx context.Context) ([][]string, error) {
			return nil, fmt.Errorf("cell export failed")
		},
	}
}

var financialSets = []KeywordSet{
	{Name: "financial", Keywords: []string{"revenue", "income", "margin", "eps", "gaap"}},
	{Name: "cashflow", Keywords: []string{"cash flow", "assets", "liabilities"}},
}

func TestClassifyTexts(t *testing.T) {
	elements := []model.Element{
		text("a", "Total Revenue for the quarter"),
		text("b", "Forward-looking statements"),
		text("c", "Cash flow from operations"),
	}

	result, err := Classify(context.Background(), elements, financialSets)
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}

	if got := result.Bucket("financial"); len(got) != 1 || got[0].ID() != "a" {
		t.Errorf("financial bucket = %v", got)
	}
	if got := result.Bucket("cashflow"); len(got) != 1 || got[0].ID() != "c" {
		t.Errorf("cashflow bucket = %v", got)
	}
	if got := result.Bucket(Unclassified); len(got) != 1 || got[0].ID() != "b" {
		t.Errorf("unclassified bucket = %v", got)
	}
}

func TestClassifyTableFirstRow(t *testing.T) {
	elements := []model.Element{
		table("t1", "Revenue", "Q1", "Q2"),
		table("t2", "Region", "Stores"),
	}

	result, err := Classify(context.Background(), elements, financialSets)
	if err != nil {
		t.Fatal(err)
	}

	if got := result.Bucket("financial"); len(got) != 1 || got[0].ID() != "t1" {
		t.Errorf("financial bucket = %v", got)
	}
	if got := result.Bucket(Unclassified); len(got) != 1 || got[0].ID() != "t2" {
		t.Errorf("unclassified bucket = %v", got)
	}
}

// TestClassifyFirstMatchWins verifies that an element matching several
// keyword sets lands only in the first one, in the given set order.
func TestClassifyFirstMatchWins(t *testing.T) {
	elements := []model.Element{
		// Matches both "income" (financial) and "assets" (cashflow).
		text("both", "Net income and total assets"),
	}

	result, err := Classify(context.Background(), elements, financialSets)
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Bucket("financial"); len(got) != 1 {
		t.Fatalf("financial bucket = %v, want the element", got)
	}
	if got := result.Bucket("cashflow"); len(got) != 0 {
		t.Errorf("cashflow bucket = %v, want empty", got)
	}

	// Reversing the set order must flip the assignment.
	reversed := []KeywordSet{financialSets[1], financialSets[0]}
	result, err = Classify(context.Background(), elements, reversed)
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Bucket("cashflow"); len(got) != 1 {
		t.Errorf("cashflow bucket = %v after reorder, want the element", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	elements := []model.Element{
		text("upper", "TOTAL REVENUE"),
		text("mixed", "Operating Income Statement"),
	}

	result, err := Classify(context.Background(), elements, financialSets)
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Bucket("financial"); len(got) != 2 {
		t.Errorf("financial bucket has %d elements, want 2", len(got))
	}
}

func TestClassifyNoExtractableText(t *testing.T) {
	elements := []model.Element{
		text("empty", ""),
		&model.Picture{Self: "pic"},
		&model.Group{Self: "grp"},
	}

	result, err := Classify(context.Background(), elements, financialSets)
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Bucket(Unclassified); len(got) != 3 {
		t.Errorf("unclassified bucket has %d elements, want 3", len(got))
	}
	if len(result.Failures) != 0 {
		t.Errorf("Failures = %v, want none", result.Failures)
	}
}

func TestClassifyGridFailureAbsorbed(t *testing.T) {
	elements := []model.Element{
		brokenTable("bad"),
		table("good", "Revenue"),
	}

	result, err := Classify(context.Background(), elements, financialSets)
	if err != nil {
		t.Fatalf("Classify() propagated a grid failure: %v", err)
	}

	if got := result.Bucket(Unclassified); len(got) != 1 || got[0].ID() != "bad" {
		t.Errorf("unclassified bucket = %v, want [bad]", got)
	}
	if len(result.Failures) != 1 || result.Failures[0].ID != "bad" {
		t.Errorf("Failures = %v, want one entry for bad", result.Failures)
	}
	if got := result.Bucket("financial"); len(got) != 1 || got[0].ID() != "good" {
		t.Errorf("financial bucket = %v, want [good]", got)
	}
}

// TestClassifyBudgetExpired verifies that a spent context budget routes a
// table to unclassified instead of aborting the run.
func TestClassifyBudgetExpired(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	slow := &model.Table{
		Self: "slow",
		Grid: func(ctx context.Context) ([][]string, error) {
			return nil, ctx.Err()
		},
	}

	result, err := Classify(ctx, []model.Element{slow, text("a", "revenue")}, financialSets)
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if got := result.Bucket(Unclassified); len(got) != 1 || got[0].ID() != "slow" {
		t.Errorf("unclassified bucket = %v, want [slow]", got)
	}
	if len(result.Failures) != 1 {
		t.Fatalf("Failures = %v, want one entry", result.Failures)
	}
	if !errors.Is(result.Failures[0].Err, context.DeadlineExceeded) {
		t.Errorf("failure = %v, want deadline exceeded", result.Failures[0].Err)
	}
	if got := result.Bucket("financial"); len(got) != 1 {
		t.Errorf("text classification was affected by a table budget failure: %v", got)
	}
}

func TestClassifyPreservesInputOrder(t *testing.T) {
	elements := []model.Element{
		text("1", "revenue up"),
		text("2", "income flat"),
		text("3", "margin down"),
	}

	result, err := Classify(context.Background(), elements, financialSets)
	if err != nil {
		t.Fatal(err)
	}

	got := result.Bucket("financial")
	if len(got) != 3 {
		t.Fatalf("financial bucket has %d elements, want 3", len(got))
	}
	for i, want := range []model.ElementID{"1", "2", "3"} {
		if got[i].ID() != want {
			t.Errorf("bucket[%d] = %q, want %q", i, got[i].ID(), want)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	elements := []model.Element{
		text("a", "revenue"),
		text("b", "assets"),
		text("c", "nothing of note"),
	}

	first, err := Classify(context.Background(), elements, financialSets)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		again, err := Classify(context.Background(), elements, financialSets)
		if err != nil {
			t.Fatal(err)
		}
		for _, name := range first.Order {
			a, b := first.Bucket(name), again.Bucket(name)
			if len(a) != len(b) {
				t.Fatalf("bucket %q size changed between runs", name)
			}
			for j := range a {
				if a[j].ID() != b[j].ID() {
					t.Fatalf("bucket %q content changed between runs", name)
				}
			}
		}
	}
}

// TestClassifyExactlyOneBucket verifies the partition property: every
// input element lands in exactly one bucket.
func TestClassifyExactlyOneBucket(t *testing.T) {
	elements := []model.Element{
		text("a", "revenue and assets"),
		text("b", ""),
		table("c", "GAAP", "Non-GAAP"),
		brokenTable("d"),
		&model.Picture{Self: "e"},
	}

	result, err := Classify(context.Background(), elements, financialSets)
	if err != nil {
		t.Fatal(err)
	}

	counts := make(map[model.ElementID]int)
	for _, name := range result.Order {
		for _, el := range result.Bucket(name) {
			counts[el.ID()]++
		}
	}
	if len(counts) != len(elements) {
		t.Errorf("buckets cover %d elements, want %d", len(counts), len(elements))
	}
	for id, n := range counts {
		if n != 1 {
			t.Errorf("element %q is in %d buckets, want exactly 1", id, n)
		}
	}
}

func TestClassifyInvalidSets(t *testing.T) {
	tests := []struct {
		name string
		sets []KeywordSet
	}{
		{"empty name", []KeywordSet{{Name: "", Keywords: []string{"x"}}}},
		{"reserved name", []KeywordSet{{Name: Unclassified, Keywords: []string{"x"}}}},
		{"duplicate name", []KeywordSet{
			{Name: "a", Keywords: []string{"x"}},
			{Name: "a", Keywords: []string{"y"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(context.Background(), nil, tt.sets)
			if !errors.Is(err, model.ErrInvalidParameter) {
				t.Errorf("Classify() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestClassifyNoSets(t *testing.T) {
	result, err := Classify(context.Background(), []model.Element{text("a", "revenue")}, nil)
	if err != nil {
		t.Fatalf("Classify() with no sets should succeed, got %v", err)
	}
	if got := result.Bucket(Unclassified); len(got) != 1 {
		t.Errorf("unclassified bucket = %v, want the lone element", got)
	}
}
