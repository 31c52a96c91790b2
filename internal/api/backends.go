package api

import (
	"context"
	"fmt"

	"github.com/aferro/curator/internal/resource"
)

// kindClient implements resource.Backend for one resource kind.
// Asset-bearing kinds submit multipart bodies; the rest submit JSON.
type kindClient[T any] struct {
	c         *Client
	kind      string
	multipart bool
}

func (k kindClient[T]) base() string { return "/api/" + k.kind + "/" }

func (k kindClient[T]) itemPath(id resource.ID) string {
	return fmt.Sprintf("/api/%s/%d/", k.kind, id)
}

func (k kindClient[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := k.c.get(ctx, k.base(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (k kindClient[T]) Get(ctx context.Context, id resource.ID) (T, error) {
	var rec T
	if err := k.c.get(ctx, k.itemPath(id), &rec); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (k kindClient[T]) Create(ctx context.Context, draft resource.Draft) (T, error) {
	return k.save(ctx, "POST", k.base(), draft)
}

func (k kindClient[T]) Update(ctx context.Context, id resource.ID, draft resource.Draft) (T, error) {
	return k.save(ctx, "PUT", k.itemPath(id), draft)
}

func (k kindClient[T]) save(ctx context.Context, method, path string, draft resource.Draft) (T, error) {
	var rec T
	var err error
	if k.multipart {
		err = k.c.sendForm(ctx, method, path, draft, &rec)
	} else {
		err = k.c.sendJSON(ctx, method, path, draft.Fields, &rec)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (k kindClient[T]) Delete(ctx context.Context, id resource.ID) error {
	return k.c.deleteReq(ctx, k.itemPath(id))
}

func (k kindClient[T]) DeleteMany(ctx context.Context, ids []resource.ID) error {
	payload := struct {
		IDs []resource.ID `json:"ids"`
	}{IDs: ids}
	return k.c.sendJSON(ctx, "POST", k.base()+"delete-multiple/", payload, nil)
}

// Photos returns the backend for the photo kind.
func (c *Client) Photos() resource.Backend[Photo] {
	return kindClient[Photo]{c: c, kind: "photos", multipart: true}
}

// Videos returns the backend for the video kind.
func (c *Client) Videos() resource.Backend[Video] {
	return kindClient[Video]{c: c, kind: "videos", multipart: true}
}

// Services returns the backend for the service kind.
func (c *Client) Services() resource.Backend[Service] {
	return kindClient[Service]{c: c, kind: "services", multipart: true}
}

// Contacts returns the backend for the contact kind.
func (c *Client) Contacts() resource.Backend[Contact] {
	return kindClient[Contact]{c: c, kind: "contacts", multipart: false}
}

// MarkContactRead flips a contact's read status server-side and returns
// the updated record.
func (c *Client) MarkContactRead(ctx context.Context, id resource.ID) (Contact, error) {
	var rec Contact
	path := fmt.Sprintf("/api/contacts/%d/", id)
	payload := map[string]string{"status": ContactRead}
	if err := c.sendJSON(ctx, "PUT", path, payload, &rec); err != nil {
		return Contact{}, err
	}
	return rec, nil
}
