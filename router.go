package main

import (
	"log"
	"sort"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, api *API) {
	endpointsMap := map[string]struct{}{}

	register := func(method, path string, h fiber.Handler) {
		app.Add(method, path, h)
		endpointsMap[method+" "+path] = struct{}{}
	}

	// Public read path
	register(fiber.MethodGet, "/api/events", api.listEvents)
	register(fiber.MethodGet, "/api/news", api.listNews)
	register(fiber.MethodGet, "/api/home", api.getHome)

	// Admin write path. HTML forms only speak GET/POST, so updates and
	// deletes are POSTs on their own paths.
	register(fiber.MethodPost, "/admin/events", api.addEvent)
	register(fiber.MethodPost, "/admin/events/:id", api.updateEvent)
	register(fiber.MethodPost, "/admin/events/:id/delete", api.deleteEvent)
	register(fiber.MethodPost, "/admin/news", api.addNews)
	register(fiber.MethodPost, "/admin/news/:id", api.updateNews)
	register(fiber.MethodPost, "/admin/news/:id/delete", api.deleteNews)
	register(fiber.MethodPost, "/admin/home", api.setHero)
	register(fiber.MethodPost, "/admin/home/delete", api.clearHero)

	var endpoints []string
	for e := range endpointsMap {
		endpoints = append(endpoints, e)
	}
	sort.Strings(endpoints)
	log.Println("Available endpoints:")
	for _, e := range endpoints {
		log.Printf("  %s", e)
	}
}
