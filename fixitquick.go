// Package fixitquick provides a local, CLI-based catalog of troubleshooting
// guides ("solutions") organized by category, with search, bookmarks, a
// recently-viewed history, local user accounts, solution feedback and
// suggestions, and an AI chat assistant. All user state is persisted in a
// local key-value store; the static catalog is compiled in and immutable.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., sqlite/, storage/,
// catalog/, gemini/).
package fixitquick
