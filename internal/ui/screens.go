package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aferro/curator/internal/api"
)

// Per-kind screen wiring. Each constructor binds one REST collection to
// the generic browse screen.

func newImagesScreen(sh *shell) *browseModel[api.Photo] {
	return newBrowse(sh, browseConfig[api.Photo]{
		kind:    "photos",
		title:   "Images",
		adapter: api.PhotoAdapter{},
		backend: sh.client.Photos(),
		rules:   api.PhotoRules(),
		columns: []column{
			{title: "ID", width: 5},
			{title: "Title", width: 28},
			{title: "Description", width: 36},
			{title: "Created", width: 16},
		},
		row: func(p api.Photo) []string {
			return []string{fmt.Sprintf("%d", p.ID), p.Title, p.Description, p.CreatedAt}
		},
		detail: func(p api.Photo) []string {
			return []string{
				"Title:       " + p.Title,
				"Description: " + p.Description,
				"File:        " + p.Photo,
				"Created:     " + p.CreatedAt,
			}
		},
		form: &formConfig[api.Photo]{
			assetLabel: "Image file",
			fields: []formField[api.Photo]{
				{name: "title", label: "Title", fromRecord: func(p api.Photo) string { return p.Title }},
				{name: "description", label: "Description", fromRecord: func(p api.Photo) string { return p.Description }},
			},
		},
	})
}

func newVideosScreen(sh *shell) *browseModel[api.Video] {
	return newBrowse(sh, browseConfig[api.Video]{
		kind:    "videos",
		title:   "Videos",
		adapter: api.VideoAdapter{},
		backend: sh.client.Videos(),
		rules:   api.VideoRules(),
		columns: []column{
			{title: "ID", width: 5},
			{title: "Title", width: 28},
			{title: "Description", width: 36},
			{title: "Created", width: 16},
		},
		row: func(v api.Video) []string {
			return []string{fmt.Sprintf("%d", v.ID), v.Title, v.Description, v.CreatedAt}
		},
		detail: func(v api.Video) []string {
			return []string{
				"Title:       " + v.Title,
				"Description: " + v.Description,
				"File:        " + v.Video,
				"Created:     " + v.CreatedAt,
			}
		},
		form: &formConfig[api.Video]{
			assetLabel: "Video file",
			fields: []formField[api.Video]{
				{name: "title", label: "Title", fromRecord: func(v api.Video) string { return v.Title }},
				{name: "description", label: "Description", fromRecord: func(v api.Video) string { return v.Description }},
			},
		},
	})
}

func newServicesScreen(sh *shell) *browseModel[api.Service] {
	return newBrowse(sh, browseConfig[api.Service]{
		kind:    "services",
		title:   "Services",
		adapter: api.ServiceAdapter{},
		backend: sh.client.Services(),
		rules:   api.ServiceRules(),
		columns: []column{
			{title: "ID", width: 5},
			{title: "Title", width: 26},
			{title: "Status", width: 9},
			{title: "Description", width: 30},
			{title: "Created", width: 16},
		},
		row: func(s api.Service) []string {
			return []string{fmt.Sprintf("%d", s.ID), s.Title, s.Status, s.Description, s.CreatedAt}
		},
		detail: func(s api.Service) []string {
			return []string{
				"Title:       " + s.Title,
				"Status:      " + s.Status,
				"Description: " + s.Description,
				"File:        " + s.File,
				"Created:     " + s.CreatedAt,
			}
		},
		statusOptions: []string{"", api.ServiceActive, api.ServiceInactive},
		statusOf:      func(s api.Service) string { return s.Status },
		form: &formConfig[api.Service]{
			assetLabel: "Brochure",
			fields: []formField[api.Service]{
				{name: "title", label: "Title", fromRecord: func(s api.Service) string { return s.Title }},
				{name: "description", label: "Description", fromRecord: func(s api.Service) string { return s.Description }},
				{
					name:       "status",
					label:      "Status",
					options:    []string{api.ServiceActive, api.ServiceInactive},
					fromRecord: func(s api.Service) string { return s.Status },
				},
			},
		},
	})
}

// newContactsScreen builds the inbox. Contacts have no form; opening an
// unread message marks it read on the server and reconciles the row.
func newContactsScreen(sh *shell) *browseModel[api.Contact] {
	return newBrowse(sh, browseConfig[api.Contact]{
		kind:    "contacts",
		title:   "Contacts",
		adapter: api.ContactAdapter{},
		backend: sh.client.Contacts(),
		rules:   api.ContactRules(),
		columns: []column{
			{title: "ID", width: 5},
			{title: "Status", width: 7},
			{title: "Name", width: 18},
			{title: "Email", width: 24},
			{title: "Subject", width: 26},
		},
		row: func(c api.Contact) []string {
			return []string{fmt.Sprintf("%d", c.ID), c.Status, c.Name, c.Email, c.Subject}
		},
		detail: func(c api.Contact) []string {
			return []string{
				"From:    " + c.Name + " <" + c.Email + ">",
				"Subject: " + c.Subject,
				"Date:    " + c.CreatedAt,
				"",
				c.Message,
			}
		},
		statusOptions: []string{"", api.ContactUnread, api.ContactRead},
		statusOf:      func(c api.Contact) string { return c.Status },
		onDetailLoaded: func(sh *shell, rec api.Contact) tea.Cmd {
			if rec.Status != api.ContactUnread {
				return nil
			}
			ctx := sh.ctx
			client := sh.client
			id := api.ContactAdapter{}.ID(rec)
			return func() tea.Msg {
				updated, err := client.MarkContactRead(ctx, id)
				return recordReplacedMsg[api.Contact]{kind: "contacts", rec: updated, err: err}
			}
		},
	})
}
