package main

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
)

// API wires the repositories and the upload binder into HTTP handlers.
// Public reads return sorted JSON; admin writes take multipart form data
// and answer with a redirect back to the admin surface.
type API struct {
	events  *Collection
	news    *Collection
	home    *Singleton
	uploads *Uploads
	logger  *Logger
}

func NewAPI(store *Store, uploads *Uploads, logger *Logger) *API {
	return &API{
		events:  NewCollection(store, "events", "title", "summary", "date", "url", "thumbnail"),
		news:    NewCollection(store, "news", "title", "summary", "publishedAt"),
		home:    NewSingleton(store, "home", Record{"heroImage": ""}),
		uploads: uploads,
		logger:  logger,
	}
}

// ─── Public read path ───────────────────────────────────────────────────────

func (a *API) listEvents(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodGet, c.Path())
	list := SortByFieldDesc(a.events.List(), "date")
	a.logger.Success(ComponentHTTPServer, fmt.Sprintf("Found %d events. Responding with collection", len(list)))
	a.logger.RespondWith(200)
	return c.JSON(list)
}

func (a *API) listNews(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodGet, c.Path())
	list := SortByFieldDesc(a.news.List(), "publishedAt")
	a.logger.Success(ComponentHTTPServer, fmt.Sprintf("Found %d news items. Responding with collection", len(list)))
	a.logger.RespondWith(200)
	return c.JSON(list)
}

func (a *API) getHome(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodGet, c.Path())
	a.logger.RespondWith(200)
	return c.JSON(a.home.Get())
}

// ─── Admin write path: events ───────────────────────────────────────────────

func (a *API) addEvent(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodPost, c.Path())
	fields := Record{
		"title":   c.FormValue("title"),
		"summary": c.FormValue("summary"),
		"date":    c.FormValue("date"),
		"url":     c.FormValue("url"),
	}
	if ref, ok, err := a.storedUpload(c, "thumbnail"); err != nil {
		return err
	} else if ok {
		fields["thumbnail"] = ref
	}
	if _, err := a.events.Add(fields); err != nil {
		return err
	}
	return a.redirect(c, "/admin/events")
}

func (a *API) updateEvent(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodPost, c.Path())
	fields := Record{
		"title":   c.FormValue("title"),
		"summary": c.FormValue("summary"),
		"date":    c.FormValue("date"),
		"url":     c.FormValue("url"),
	}
	// No file means the merge keeps the existing thumbnail.
	if ref, ok, err := a.storedUpload(c, "thumbnail"); err != nil {
		return err
	} else if ok {
		fields["thumbnail"] = ref
	}
	if _, found, err := a.events.UpdateByID(c.Params("id"), fields); err != nil {
		return err
	} else if !found {
		a.logger.Warning(ComponentStore, fmt.Sprintf("No event with id %q, nothing updated", c.Params("id")))
	}
	return a.redirect(c, "/admin/events")
}

func (a *API) deleteEvent(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodPost, c.Path())
	if err := a.events.RemoveByID(c.Params("id")); err != nil {
		return err
	}
	return a.redirect(c, "/admin/events")
}

// ─── Admin write path: news ─────────────────────────────────────────────────

func (a *API) addNews(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodPost, c.Path())
	_, err := a.news.Add(Record{
		"title":       c.FormValue("title"),
		"summary":     c.FormValue("summary"),
		"publishedAt": c.FormValue("publishedAt"),
	})
	if err != nil {
		return err
	}
	return a.redirect(c, "/admin/news")
}

func (a *API) updateNews(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodPost, c.Path())
	fields := Record{
		"title":       c.FormValue("title"),
		"summary":     c.FormValue("summary"),
		"publishedAt": c.FormValue("publishedAt"),
	}
	if _, found, err := a.news.UpdateByID(c.Params("id"), fields); err != nil {
		return err
	} else if !found {
		a.logger.Warning(ComponentStore, fmt.Sprintf("No news item with id %q, nothing updated", c.Params("id")))
	}
	return a.redirect(c, "/admin/news")
}

func (a *API) deleteNews(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodPost, c.Path())
	if err := a.news.RemoveByID(c.Params("id")); err != nil {
		return err
	}
	return a.redirect(c, "/admin/news")
}

// ─── Admin write path: hero image ───────────────────────────────────────────

func (a *API) setHero(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodPost, c.Path())
	if ref, ok, err := a.storedUpload(c, "heroImage"); err != nil {
		return err
	} else if ok {
		if err := a.home.SetField("heroImage", ref); err != nil {
			return err
		}
	}
	return a.redirect(c, "/admin")
}

// clearHero empties the reference only; the uploaded file stays on disk.
func (a *API) clearHero(c *fiber.Ctx) error {
	a.logger.RequestReceived(fiber.MethodPost, c.Path())
	if err := a.home.SetField("heroImage", ""); err != nil {
		return err
	}
	return a.redirect(c, "/admin")
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// storedUpload binds the named multipart file, if any, and returns its
// public reference path. A request without that file part is not an
// error; ok reports whether a file was stored.
func (a *API) storedUpload(c *fiber.Ctx, field string) (ref string, ok bool, err error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return "", false, nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", false, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", false, fmt.Errorf("read upload %q: %w", fh.Filename, err)
	}
	ref, err = a.uploads.Put(fh.Filename, data)
	if err != nil {
		return "", false, err
	}
	a.logger.Success(ComponentUploads, fmt.Sprintf("Stored %q as %s", fh.Filename, ref))
	return ref, true, nil
}

func (a *API) redirect(c *fiber.Ctx, location string) error {
	a.logger.RedirectTo(location)
	return c.Redirect(location, fiber.StatusFound)
}
