package catalog

import (
	"context"
	"fmt"

	"keshwala/models"
	"keshwala/services/documents"

	"go.uber.org/zap"
)

// SeedReport counts what Seed changed.
type SeedReport struct {
	Added   int
	Updated int
	Deleted int
}

type seedSet struct {
	collection string
	key        string
	items      []fielder
}

type fielder interface {
	Fields() map[string]any
}

func seedSets() []seedSet {
	return []seedSet{
		{models.CollectionServices, "title", fielders(FallbackServices())},
		{models.CollectionWigs, "name", fielders(FallbackWigs())},
		{models.CollectionTestimonials, "name", fielders(FallbackTestimonials())},
		{models.CollectionBlogPosts, "title", fielders(FallbackBlogPosts())},
	}
}

func fielders[T fielder](items []T) []fielder {
	out := make([]fielder, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// Seed writes the built-in catalog to the document store. A document whose
// title (services, blog posts) or name (wigs, testimonials) matches a built-in
// item is updated in place; the rest are added. With prune, catalog documents
// that match no built-in item, and duplicates of one that does, are deleted.
func Seed(ctx context.Context, docs documents.DocumentService, prune bool, logger *zap.Logger) (SeedReport, error) {
	var report SeedReport
	for _, set := range seedSets() {
		existing, rerr := docs.GetDocuments(ctx, set.collection).Unwrap()
		if rerr != nil {
			return report, fmt.Errorf("seed: read %s: %w", set.collection, rerr)
		}
		byKey := make(map[string]string, len(existing))
		for _, d := range existing {
			if k, ok := d.Data[set.key].(string); ok {
				if _, seen := byKey[k]; !seen {
					byKey[k] = d.ID
				}
			}
		}

		keep := make(map[string]bool, len(set.items))
		for _, item := range set.items {
			fields := item.Fields()
			k, _ := fields[set.key].(string)
			if id, ok := byKey[k]; ok {
				if rerr := docs.UpdateDocument(ctx, set.collection, id, fields).Err(); rerr != nil {
					return report, fmt.Errorf("seed: update %s %q: %w", set.collection, k, rerr)
				}
				keep[id] = true
				report.Updated++
				continue
			}
			id, rerr := docs.AddDocument(ctx, set.collection, fields).Unwrap()
			if rerr != nil {
				return report, fmt.Errorf("seed: add %s %q: %w", set.collection, k, rerr)
			}
			keep[id] = true
			report.Added++
		}

		if !prune {
			continue
		}
		for _, d := range existing {
			if keep[d.ID] {
				continue
			}
			if rerr := docs.DeleteDocument(ctx, set.collection, d.ID).Err(); rerr != nil {
				return report, fmt.Errorf("seed: delete %s/%s: %w", set.collection, d.ID, rerr)
			}
			logger.Info("Pruned catalog document", zap.String("collection", set.collection), zap.String("id", d.ID))
			report.Deleted++
		}
	}
	return report, nil
}
