package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amaumene/gomoviesearch/internal/constants"
	"github.com/amaumene/gomoviesearch/internal/details"
	"github.com/amaumene/gomoviesearch/internal/models"
	"github.com/amaumene/gomoviesearch/internal/search"
	"github.com/amaumene/gomoviesearch/internal/services"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	movieStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")).
			Margin(1, 0)

	blockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))
)

func renderSearch(view search.View, imageBaseURL string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Search for Movies"))
	b.WriteString("\n")
	if view.Query != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Query:"), view.Query)
	}

	switch view.State.Status {
	case models.StatusLoading:
		b.WriteString(metaStyle.Render("Loading..."))
		b.WriteString("\n")
	case models.StatusError:
		b.WriteString(errorStyle.Render(view.State.Message))
		b.WriteString("\n")
	}

	if len(view.Results) == 0 {
		if view.State.Status == models.StatusIdle {
			b.WriteString(metaStyle.Render("No search yet. Try: moviesearch search <title>"))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString("\n")
	for i, m := range view.Results {
		line := movieStyle.Render(m.Title)
		if m.ReleaseDate != "" {
			line += " " + metaStyle.Render("("+m.ReleaseDate+")")
		}
		fmt.Fprintf(&b, "%2d. %s\n", i+1, line)
		fmt.Fprintf(&b, "    %s %d\n", labelStyle.Render("id"), m.ID)
		fmt.Fprintf(&b, "    %s\n", urlStyle.Render(services.PosterURL(imageBaseURL, m.PosterPath, constants.SearchPosterPlaceholder)))
	}

	if view.Pagination.Visible {
		b.WriteString("\n")
		b.WriteString(renderPagination(view.Pagination))
		b.WriteString("\n")
	}
	return b.String()
}

func renderPagination(p models.Pagination) string {
	prev, next := "prev", "next"
	if p.PrevDisabled {
		prev = metaStyle.Render(prev)
	}
	if p.NextDisabled {
		next = metaStyle.Render(next)
	}
	return fmt.Sprintf("< %s  Page %d of %d  %s >", prev, p.CurrentPage, p.TotalPages, next)
}

func renderDetails(view details.View) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Movie Information"))
	b.WriteString("\n")

	if view.State.Status == models.StatusError || view.Movie == nil {
		msg := view.State.Message
		if msg == "" {
			msg = "nothing loaded"
		}
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
		return b.String()
	}

	rows := []struct{ label, value string }{
		{"Movie Name", view.Movie.Title},
		{"Genres", view.Genres()},
		{"Release Date", view.ReleaseDate()},
		{"Overview", view.Overview()},
		{"Rating", view.Rating()},
		{"Poster", urlStyle.Render(view.PosterURL)},
	}
	if view.Trailer != "" {
		rows = append(rows, struct{ label, value string }{"Trailer", urlStyle.Render(view.Trailer)})
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(r.label+" :")+" "+r.value)
	}
	b.WriteString(blockStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	return b.String()
}
