package services

import (
	"context"
	"testing"

	"trivia-api/internal/testutil"
)

func TestQuizNextExcludesPreviousQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cat := testutil.CreateCategory(t, db, "Geography")
	var ids []int
	for _, text := range []string{"Q1", "Q2", "Q3", "Q4"} {
		ids = append(ids, testutil.CreateQuestion(t, db, text, cat.ID, 2).ID)
	}
	svc := NewQuizService(db)
	ctx := context.Background()

	previous := []int{ids[0], ids[1]}
	seen := map[int]bool{}
	for {
		draw, err := svc.Next(ctx, QuizRequest{PreviousQuestions: previous, CategoryID: AllCategories})
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if draw.Exhausted {
			break
		}
		id := draw.Question.ID
		if id == ids[0] || id == ids[1] {
			t.Fatalf("drew previously seen question %d", id)
		}
		if seen[id] {
			t.Fatalf("drew question %d twice", id)
		}
		seen[id] = true
		previous = append(previous, id)
	}

	if len(seen) != 2 {
		t.Errorf("drew %d distinct questions before exhaustion, want 2", len(seen))
	}
}

func TestQuizNextFiltersByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	science := testutil.CreateCategory(t, db, "Science")
	art := testutil.CreateCategory(t, db, "Art")
	testutil.CreateQuestion(t, db, "Science Q", science.ID, 1)
	artQuestion := testutil.CreateQuestion(t, db, "Art Q", art.ID, 1)
	svc := NewQuizService(db)

	for i := 0; i < 10; i++ {
		draw, err := svc.Next(context.Background(), QuizRequest{CategoryID: art.ID})
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if draw.Exhausted || draw.Question == nil {
			t.Fatal("expected a question")
		}
		if draw.Question.ID != artQuestion.ID {
			t.Fatalf("drew question %d from wrong category", draw.Question.ID)
		}
	}
}

func TestQuizNextUsesPicker(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cat := testutil.CreateCategory(t, db, "History")
	testutil.CreateQuestion(t, db, "First", cat.ID, 1)
	testutil.CreateQuestion(t, db, "Second", cat.ID, 1)
	last := testutil.CreateQuestion(t, db, "Third", cat.ID, 1)

	svc := NewQuizService(db)
	var gotN int
	svc.pick = func(n int) int {
		gotN = n
		return n - 1
	}

	draw, err := svc.Next(context.Background(), QuizRequest{CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if gotN != 3 {
		t.Errorf("picker saw %d candidates, want 3", gotN)
	}
	if draw.Question.ID != last.ID {
		t.Errorf("drew %d, want %d", draw.Question.ID, last.ID)
	}
}

func TestQuizNextExhausted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cat := testutil.CreateCategory(t, db, "Sports")
	only := testutil.CreateQuestion(t, db, "Only", cat.ID, 1)
	svc := NewQuizService(db)
	ctx := context.Background()

	tests := []struct {
		name string
		req  QuizRequest
	}{
		{name: "all seen", req: QuizRequest{PreviousQuestions: []int{only.ID}, CategoryID: cat.ID}},
		{name: "unknown category", req: QuizRequest{CategoryID: 404}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draw, err := svc.Next(ctx, tt.req)
			if err != nil {
				t.Fatalf("Next failed: %v", err)
			}
			if !draw.Exhausted {
				t.Error("expected exhausted draw")
			}
			if draw.Question != nil {
				t.Errorf("exhausted draw carries question %d", draw.Question.ID)
			}
		})
	}
}
