package main

import (
	"context"
	"io"

	"github.com/fixitquick/fixitquick"
	"github.com/fixitquick/fixitquick/storage"
)

// CLI defines the command-line interface structure.
type CLI struct {
	Categories CategoriesCmd `cmd:"" help:"List troubleshooting categories."`
	Solutions  SolutionsCmd  `cmd:"" help:"List troubleshooting solutions."`
	Show       ShowCmd       `cmd:"" help:"Show a solution with its steps."`
	Search     SearchCmd     `cmd:"" help:"Search solutions by keyword."`

	Bookmark BookmarkCmd `cmd:"" help:"Manage bookmarked solutions."`
	Recent   RecentCmd   `cmd:"" help:"Manage recently viewed solutions."`

	Register RegisterCmd `cmd:"" help:"Create an account."`
	Login    LoginCmd    `cmd:"" help:"Log in to an account."`
	Logout   LogoutCmd   `cmd:"" help:"Log out of the current account."`
	Whoami   WhoamiCmd   `cmd:"" help:"Show the logged-in user."`
	Profile  ProfileCmd  `cmd:"" help:"Update the logged-in user's profile."`

	Feedback FeedbackCmd `cmd:"" help:"Vote or comment on a solution."`
	Suggest  SuggestCmd  `cmd:"" help:"Suggest a new troubleshooting topic."`

	Ask AskCmd `cmd:"" help:"Ask the AI assistant a tech question."`

	Theme ThemeCmd `cmd:"" help:"Show or change the color theme."`
	Reset ResetCmd `cmd:"" help:"Delete all locally stored data."`
}

// Dependencies holds all the dependencies that commands need.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Accessor *storage.Accessor

	Catalog     fixitquick.CatalogService
	Search      fixitquick.SearchService
	Bookmarks   fixitquick.BookmarkService
	Recent      fixitquick.RecentlyViewedService
	Auth        fixitquick.AuthService
	Feedback    fixitquick.FeedbackService
	Suggestions fixitquick.SuggestionService
	Theme       fixitquick.ThemeService
	ChatHistory fixitquick.ChatHistoryService
	Assistant   fixitquick.Assistant
}
