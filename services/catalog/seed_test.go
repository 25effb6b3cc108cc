package catalog

import (
	"context"
	"testing"

	"keshwala/database/repository/docstore"
	"keshwala/models"
	"keshwala/services/documents"

	"go.uber.org/zap"
)

func TestSeedIsIdempotentAndPrunes(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	docs := documents.NewDocumentService(store, zap.NewNop())

	report, err := Seed(ctx, docs, false, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if report != (SeedReport{Added: 24}) {
		t.Fatalf("first seed = %+v", report)
	}

	store.Add(ctx, models.CollectionWigs, map[string]any{"name": "Retired Wig"})
	store.Add(ctx, models.CollectionWigs, map[string]any{"name": "Bridal Wig"})

	report, err = Seed(ctx, docs, false, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if report != (SeedReport{Updated: 24}) || store.Len(models.CollectionWigs) != 8 {
		t.Fatalf("second seed = %+v, wigs = %d", report, store.Len(models.CollectionWigs))
	}

	report, err = Seed(ctx, docs, true, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if report.Deleted != 2 || store.Len(models.CollectionWigs) != 6 {
		t.Fatalf("pruning seed = %+v, wigs = %d", report, store.Len(models.CollectionWigs))
	}
}

func TestSeedFieldsDecodeBack(t *testing.T) {
	ctx := context.Background()
	docs := documents.NewDocumentService(docstore.NewMemoryStore(), zap.NewNop())
	if _, err := Seed(ctx, docs, false, zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	wigs, rerr := docs.GetWigs(ctx).Unwrap()
	if rerr != nil {
		t.Fatal(rerr)
	}
	byName := map[string]models.Wig{}
	for _, w := range wigs {
		byName[w.Name] = w
	}
	got := byName["Curly Bob Wig"]
	if got.Type != "Human Hair" || got.Reviews != 89 || got.Rating != 4.8 || len(got.Features) != 3 || got.ID == "" {
		t.Fatalf("decoded wig = %+v", got)
	}
}

func TestSeedUnavailable(t *testing.T) {
	docs := documents.NewDocumentService(nil, zap.NewNop())
	if _, err := Seed(context.Background(), docs, false, zap.NewNop()); err == nil {
		t.Fatal("seeding without a store should fail")
	}
}
