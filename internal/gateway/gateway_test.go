package gateway

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"mcfolio/internal/models"
)

// fakeBlobs records storage calls in memory.
type fakeBlobs struct {
	objects map[string][]byte
	deleted []string
	failPut bool
	failDel bool
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: map[string][]byte{}}
}

func (f *fakeBlobs) Upload(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	if f.failPut {
		return errors.New("storage down")
	}
	data, _ := io.ReadAll(body)
	f.objects[key] = data
	return nil
}

func (f *fakeBlobs) Delete(_ context.Context, key string) error {
	if f.failDel {
		return errors.New("storage down")
	}
	f.deleted = append(f.deleted, key)
	delete(f.objects, key)
	return nil
}

func (f *fakeBlobs) FileURL(key string) string { return "https://cdn.test.local/" + key }

func (f *fakeBlobs) ExtractKey(rawURL string) (string, bool) {
	const prefix = "https://cdn.test.local/"
	if strings.HasPrefix(rawURL, prefix) {
		return rawURL[len(prefix):], true
	}
	return "", false
}

// fakeMedia implements mediaStore over a slice.
type fakeMedia struct {
	items      []models.Media
	failCreate bool
}

func (f *fakeMedia) Create(m *models.Media) (*models.Media, error) {
	if f.failCreate {
		return nil, errors.New("insert failed")
	}
	m.ID = uuid.New()
	f.items = append(f.items, *m)
	return m, nil
}

func (f *fakeMedia) FindByID(id uuid.UUID) (*models.Media, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeMedia) List() ([]models.Media, error) { return f.items, nil }

func (f *fakeMedia) ListByCategory(category string) ([]models.Media, error) {
	var out []models.Media
	for _, m := range f.items {
		if m.Category != nil && *m.Category == category {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMedia) Delete(id uuid.UUID) (*models.Media, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			m := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &m, nil
		}
	}
	return nil, nil
}

// fakeBookings implements bookingStore over a slice.
type fakeBookings struct {
	items []models.Booking
}

func (f *fakeBookings) Create(b *models.Booking) (*models.Booking, error) {
	b.ID = uuid.New()
	b.Status = models.BookingPending
	f.items = append(f.items, *b)
	return b, nil
}

func (f *fakeBookings) List() ([]models.Booking, error) { return f.items, nil }

func (f *fakeBookings) MarkFinished(id uuid.UUID) (*models.Booking, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsFinished = true
			return &f.items[i], nil
		}
	}
	return nil, nil
}

// fakeNews implements newsStore over a slice.
type fakeNews struct {
	items []models.News
}

func (f *fakeNews) Create(n *models.News) (*models.News, error) {
	n.ID = uuid.New()
	f.items = append(f.items, *n)
	return n, nil
}

func (f *fakeNews) FindByID(id uuid.UUID) (*models.News, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeNews) FindBySlug(slug string) (*models.News, error) {
	for i := range f.items {
		if f.items[i].Slug == slug {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeNews) SlugExists(slug string) (bool, error) {
	n, _ := f.FindBySlug(slug)
	return n != nil, nil
}

func (f *fakeNews) List() ([]models.News, error) { return f.items, nil }

func (f *fakeNews) Latest(limit int) ([]models.News, error) {
	if len(f.items) > limit {
		return f.items[:limit], nil
	}
	return f.items, nil
}

func (f *fakeNews) Delete(id uuid.UUID) (*models.News, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			n := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &n, nil
		}
	}
	return nil, nil
}

// testGateway wires a gateway over in-memory fakes.
func testGateway(blobs Blobs) (*Gateway, *fakeBookings, *fakeMedia, *fakeNews) {
	b := &fakeBookings{}
	m := &fakeMedia{}
	n := &fakeNews{}
	g := &Gateway{bookings: b, media: m, news: n, blobs: blobs}
	return g, b, m, n
}

// pngBytes renders a small valid PNG for upload tests.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUnavailableWithoutDatabase(t *testing.T) {
	g := New(nil, nil, nil)
	ctx := context.Background()

	if g.Available() {
		t.Error("Available() = true without a database")
	}

	if _, err := g.Bookings(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Bookings error = %v, want ErrUnavailable", err)
	}
	if _, err := g.Media(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Media error = %v, want ErrUnavailable", err)
	}
	if _, err := g.News(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("News error = %v, want ErrUnavailable", err)
	}
	if _, err := g.CreateBooking(ctx, BookingRequest{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("CreateBooking error = %v, want ErrUnavailable", err)
	}
	if err := g.DeleteMedia(ctx, uuid.New()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("DeleteMedia error = %v, want ErrUnavailable", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	g, _, _, _ := testGateway(nil)
	ctx := context.Background()

	valid := BookingRequest{
		FullName:    "Trần Thị B",
		Phone:       "0901234567",
		Email:       "b@example.com",
		BookingDate: "2026-11-05",
		Notes:       "Wedding MC",
	}

	tests := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"missing name", func(r *BookingRequest) { r.FullName = "  " }},
		{"missing phone", func(r *BookingRequest) { r.Phone = "" }},
		{"bad email", func(r *BookingRequest) { r.Email = "not-an-email" }},
		{"bad date", func(r *BookingRequest) { r.BookingDate = "next tuesday" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			if _, err := g.CreateBooking(ctx, req); !errors.Is(err, ErrRejected) {
				t.Errorf("error = %v, want ErrRejected", err)
			}
		})
	}

	b, err := g.CreateBooking(ctx, valid)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.Status != models.BookingPending {
		t.Errorf("status = %q, want pending", b.Status)
	}
	if b.Notes == nil || *b.Notes != "Wedding MC" {
		t.Errorf("notes = %v, want Wedding MC", b.Notes)
	}
}

func TestFinishBookingNotFound(t *testing.T) {
	g, _, _, _ := testGateway(nil)
	if _, err := g.FinishBooking(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUploadMediaStoresBlobAndThumb(t *testing.T) {
	blobs := newFakeBlobs()
	g, _, media, _ := testGateway(blobs)

	m, err := g.UploadMedia(context.Background(), MediaUpload{
		Filename:    "stage.png",
		ContentType: "image/png",
		Data:        pngBytes(t),
		Category:    "Music Fest",
		Caption:     "Festival night",
	})
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}

	if len(blobs.objects) != 2 {
		t.Errorf("stored %d blobs, want original + thumb", len(blobs.objects))
	}
	if m.ThumbURL == nil {
		t.Error("expected thumbnail URL for image upload")
	}
	if !strings.HasPrefix(m.URL, "https://cdn.test.local/media/") {
		t.Errorf("URL = %q, want storage URL", m.URL)
	}
	if len(media.items) != 1 {
		t.Errorf("stored %d records, want 1", len(media.items))
	}
}

func TestUploadMediaRejectsBadInput(t *testing.T) {
	g, _, _, _ := testGateway(newFakeBlobs())
	ctx := context.Background()

	if _, err := g.UploadMedia(ctx, MediaUpload{
		Filename: "x.txt", ContentType: "text/plain", Data: []byte("hi"),
	}); !errors.Is(err, ErrRejected) {
		t.Errorf("content type: error = %v, want ErrRejected", err)
	}

	if _, err := g.UploadMedia(ctx, MediaUpload{
		Filename: "x.png", ContentType: "image/png", Data: nil,
	}); !errors.Is(err, ErrRejected) {
		t.Errorf("empty file: error = %v, want ErrRejected", err)
	}

	if _, err := g.UploadMedia(ctx, MediaUpload{
		Filename: "x.png", ContentType: "image/png", Data: pngBytes(t), Category: "Astronaut",
	}); !errors.Is(err, ErrRejected) {
		t.Errorf("unknown category: error = %v, want ErrRejected", err)
	}
}

func TestUploadMediaUnavailableWithoutStorage(t *testing.T) {
	g, _, _, _ := testGateway(nil)
	_, err := g.UploadMedia(context.Background(), MediaUpload{
		Filename: "x.png", ContentType: "image/png", Data: pngBytes(t),
	})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestUploadMediaStorageFailure(t *testing.T) {
	blobs := newFakeBlobs()
	blobs.failPut = true
	g, _, media, _ := testGateway(blobs)

	_, err := g.UploadMedia(context.Background(), MediaUpload{
		Filename: "x.png", ContentType: "image/png", Data: pngBytes(t),
	})
	if err == nil {
		t.Fatal("expected upload failure")
	}
	if len(media.items) != 0 {
		t.Error("record stored despite failed blob upload")
	}
}

func TestUploadMediaCleansUpOnInsertFailure(t *testing.T) {
	blobs := newFakeBlobs()
	g, _, media, _ := testGateway(blobs)
	media.failCreate = true

	_, err := g.UploadMedia(context.Background(), MediaUpload{
		Filename: "x.png", ContentType: "image/png", Data: pngBytes(t),
	})
	if err == nil {
		t.Fatal("expected insert failure")
	}
	if len(blobs.objects) != 0 {
		t.Errorf("%d blobs left behind after failed insert", len(blobs.objects))
	}
}

func TestDeleteMediaRemovesOwnBlobs(t *testing.T) {
	blobs := newFakeBlobs()
	g, _, media, _ := testGateway(blobs)

	m, err := g.UploadMedia(context.Background(), MediaUpload{
		Filename: "x.png", ContentType: "image/png", Data: pngBytes(t),
	})
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}

	if err := g.DeleteMedia(context.Background(), m.ID); err != nil {
		t.Fatalf("DeleteMedia: %v", err)
	}
	if len(blobs.objects) != 0 {
		t.Errorf("%d blobs remain after delete", len(blobs.objects))
	}
	if len(media.items) != 0 {
		t.Error("record remains after delete")
	}
}

func TestDeleteMediaSkipsForeignURL(t *testing.T) {
	blobs := newFakeBlobs()
	g, _, media, _ := testGateway(blobs)

	// Seeded stock photo hosted elsewhere.
	id := uuid.New()
	media.items = append(media.items, models.Media{
		ID: id, URL: "https://images.unsplash.com/photo-123", Kind: models.MediaImage,
	})

	if err := g.DeleteMedia(context.Background(), id); err != nil {
		t.Fatalf("DeleteMedia: %v", err)
	}
	if len(blobs.deleted) != 0 {
		t.Errorf("attempted blob delete for foreign URL: %v", blobs.deleted)
	}
	if len(media.items) != 0 {
		t.Error("record remains after delete")
	}
}

func TestDeleteMediaSurvivesStorageFailure(t *testing.T) {
	blobs := newFakeBlobs()
	g, _, media, _ := testGateway(blobs)

	m, err := g.UploadMedia(context.Background(), MediaUpload{
		Filename: "x.png", ContentType: "image/png", Data: pngBytes(t),
	})
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}

	// Storage failure orphans the blob but the record must still go.
	blobs.failDel = true
	if err := g.DeleteMedia(context.Background(), m.ID); err != nil {
		t.Fatalf("DeleteMedia: %v", err)
	}
	if len(media.items) != 0 {
		t.Error("record remains after delete with failing storage")
	}
}

func TestCreateNewsDerivesUniqueSlug(t *testing.T) {
	g, _, _, news := testGateway(nil)
	ctx := context.Background()

	first, err := g.CreateNews(ctx, NewsDraft{Title: "Đêm nhạc hội", Content: "bài viết"})
	if err != nil {
		t.Fatalf("CreateNews: %v", err)
	}
	if first.Slug != "dem-nhac-hoi" {
		t.Errorf("slug = %q, want dem-nhac-hoi", first.Slug)
	}

	second, err := g.CreateNews(ctx, NewsDraft{Title: "Đêm nhạc hội", Content: "bài khác"})
	if err != nil {
		t.Fatalf("CreateNews: %v", err)
	}
	if second.Slug != "dem-nhac-hoi-2" {
		t.Errorf("slug = %q, want dem-nhac-hoi-2", second.Slug)
	}
	if len(news.items) != 2 {
		t.Errorf("stored %d articles, want 2", len(news.items))
	}
}

func TestCreateNewsValidation(t *testing.T) {
	g, _, _, _ := testGateway(nil)
	ctx := context.Background()

	if _, err := g.CreateNews(ctx, NewsDraft{Title: " ", Content: "x"}); !errors.Is(err, ErrRejected) {
		t.Errorf("empty title: error = %v, want ErrRejected", err)
	}
	if _, err := g.CreateNews(ctx, NewsDraft{Title: "x", Content: ""}); !errors.Is(err, ErrRejected) {
		t.Errorf("empty content: error = %v, want ErrRejected", err)
	}
}

func TestNewsBySlugNotFound(t *testing.T) {
	g, _, _, _ := testGateway(nil)
	if _, err := g.NewsBySlug(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteNewsRemovesThumbnail(t *testing.T) {
	blobs := newFakeBlobs()
	g, _, _, news := testGateway(blobs)

	thumb := "https://cdn.test.local/media/2026/09/1_aa.jpg"
	blobs.objects["media/2026/09/1_aa.jpg"] = []byte("x")
	id := uuid.New()
	news.items = append(news.items, models.News{
		ID: id, Title: "t", Slug: "t", Content: "c", ThumbnailURL: &thumb,
	})

	if err := g.DeleteNews(context.Background(), id); err != nil {
		t.Fatalf("DeleteNews: %v", err)
	}
	if len(blobs.objects) != 0 {
		t.Error("thumbnail blob remains after delete")
	}
	if len(news.items) != 0 {
		t.Error("article remains after delete")
	}
}
