// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"context"
	"html/template"

	"mcfolio/internal/gateway"
	"mcfolio/internal/i18n"
	"mcfolio/internal/markdown"
	"mcfolio/internal/models"
	"mcfolio/internal/taxonomy"
)

// homeNewsCount is how many recent articles the home page teases.
const homeNewsCount = 3

// Content is the slice of the gateway the public page builders read from.
type Content interface {
	Media(ctx context.Context) ([]models.Media, error)
	MediaByCategory(ctx context.Context, c taxonomy.Category) ([]models.Media, error)
	News(ctx context.Context) ([]models.News, error)
	LatestNews(ctx context.Context, limit int) ([]models.News, error)
	NewsBySlug(ctx context.Context, slug string) (*models.News, error)
}

// CategoryCard is one activity tile on the home page.
type CategoryCard struct {
	Category taxonomy.Category
	Title    string
	Desc     string
}

// HomePage backs the landing page: one card per activity category plus
// the latest articles.
type HomePage struct {
	Cards []CategoryCard
	News  State[models.News]
}

// Home assembles the landing page model.
func Home(ctx context.Context, c Content, tr *i18n.Resolver) HomePage {
	cats := taxonomy.All()
	cards := make([]CategoryCard, 0, len(cats))
	for _, cat := range cats {
		cards = append(cards, CategoryCard{
			Category: cat,
			Title:    tr.T(cat.TitleKey()),
			Desc:     tr.T(cat.DescKey()),
		})
	}

	return HomePage{
		Cards: cards,
		News:  loaded(c.LatestNews(ctx, homeNewsCount)),
	}
}

// Carousel tracks the visible slide for carousel-layout categories. The
// index always lands inside the item range, wrapping both ways.
type Carousel struct {
	Index int
	Next  int
	Prev  int
}

// NewCarousel normalizes a requested slide index against n items.
func NewCarousel(requested, n int) Carousel {
	if n <= 0 {
		return Carousel{}
	}
	idx := ((requested % n) + n) % n
	return Carousel{
		Index: idx,
		Next:  (idx + 1) % n,
		Prev:  ((idx-1)%n + n) % n,
	}
}

// ActivityPage backs one activity category page, themed per category.
type ActivityPage struct {
	Category taxonomy.Category
	Theme    taxonomy.Theme
	Title    string
	Desc     string
	Media    State[models.Media]
	Carousel Carousel
}

// Activity assembles an activity page. slide selects the visible carousel
// item; it is ignored for non-carousel layouts.
func Activity(ctx context.Context, c Content, tr *i18n.Resolver, cat taxonomy.Category, slide int) ActivityPage {
	media := loaded(c.MediaByCategory(ctx, cat))

	page := ActivityPage{
		Category: cat,
		Theme:    cat.Theme(),
		Title:    tr.T(cat.TitleKey()),
		Desc:     tr.T(cat.DescKey()),
		Media:    media,
	}
	if page.Theme.Layout == taxonomy.LayoutCarousel {
		page.Carousel = NewCarousel(slide, len(media.Items))
	}
	return page
}

// GalleryFilter is one chip in the gallery filter row.
type GalleryFilter struct {
	Label  string
	Value  string // empty for "all"
	Active bool
}

// GalleryPage backs the gallery with its category filter.
type GalleryPage struct {
	Filters []GalleryFilter
	Active  string
	Items   State[models.Media]
}

// Gallery assembles the gallery page. active is a category label or empty
// for everything. Labels outside the taxonomy match nothing: the filter
// fails closed to an empty set, never to a default category or to all.
func Gallery(ctx context.Context, c Content, tr *i18n.Resolver, active string) GalleryPage {
	var items State[models.Media]
	switch cat, known := taxonomy.ByLabel(active); {
	case active == "":
		items = loaded(c.Media(ctx))
	case known:
		items = loaded(c.MediaByCategory(ctx, cat))
	}

	filters := []GalleryFilter{{Label: tr.T("gallery.all"), Value: "", Active: active == ""}}
	for _, cc := range taxonomy.All() {
		filters = append(filters, GalleryFilter{
			Label:  cc.Label(),
			Value:  cc.Label(),
			Active: active == cc.Label(),
		})
	}

	return GalleryPage{Filters: filters, Active: active, Items: items}
}

// NewsPage backs the article listing. Templates render excerpts via
// models.News.Excerpt; stored content is never modified.
type NewsPage struct {
	Items State[models.News]
}

// NewsList assembles the article listing.
func NewsList(ctx context.Context, c Content) NewsPage {
	return NewsPage{Items: loaded(c.News(ctx))}
}

// NewsDetail backs a single article permalink.
type NewsDetail struct {
	Article *models.News
	Body    template.HTML
}

// NewsArticle loads one article and renders its Markdown body. Returns
// the gateway error unchanged so handlers can map ErrNotFound to a 404.
func NewsArticle(ctx context.Context, c Content, slug string) (NewsDetail, error) {
	n, err := c.NewsBySlug(ctx, slug)
	if err != nil {
		return NewsDetail{}, err
	}
	if n == nil {
		return NewsDetail{}, gateway.ErrNotFound
	}

	body, err := markdown.ToHTML(n.Content)
	if err != nil {
		return NewsDetail{}, err
	}
	return NewsDetail{Article: n, Body: template.HTML(body)}, nil
}
