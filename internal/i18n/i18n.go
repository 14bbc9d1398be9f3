// Package i18n holds the message catalogue for user-facing text. Statuses
// and API error codes are resolved through lookup keys so unknown values
// fall back to a generic entry instead of leaking raw identifiers.
package i18n

import "strings"

var table = map[string]string{
	"common.loading":      "Loading...",
	"common.back_to_home": "Press q to go back.",

	"status_running":    "Running",
	"status_exited":     "Exited",
	"status_stopped":    "Stopped",
	"status_dead":       "Dead",
	"status_restarting": "Restarting",
	"status_created":    "Created",
	"status_paused":     "Paused",
	"status_unknown":    "Unknown",

	"controls.start_success":   "Start requested. The workload is booting.",
	"controls.stop_success":    "Stop requested. The workload is shutting down.",
	"controls.restart_success": "Restart requested.",

	"logs.placeholder": "Logs not fetched yet. Press L to fetch.",
	"logs.empty":       "The log output is empty.",
	"logs.error":       "Could not fetch logs: {error}",

	"participants.confirm_remove": "Remove {name} from this workload?",
	"participants.empty":          "No participants yet.",

	"image.confirm_rebuild":     "Rebuild {name} from its repository? The running version will be replaced.",
	"image.confirm_update":      "Update the image of {name}? The running version will be replaced.",
	"image.rebuild_description": "Rebuild the workload from the current repository reference.",
	"image.update_description":  "Deploy a new image by URL.",
	"image.update_success":      "Deployment update requested. The new version is rolling out.",
	"image.link_github_hint":    "Link your account at https://github.com/apps/hangar-app/installations/new",
	"image.installation_hint":   "Review your installation at https://github.com/settings/installations",

	"env.save_success": "Environment saved. The workload will restart with the new variables.",

	"dashboard.public_url": "https://{name}.hangar.garageisep.com",

	"database.none_linked":    "No database is linked to this workload.",
	"database.unlinked_found": "You have an unlinked database ({name}). It can be linked to this workload.",
	"database.confirm_delete": "Delete the linked database? All stored data will be lost.",
	"database.admin_console":  "https://phpmyadmin.hangar.garageisep.com",

	"danger.confirm_delete":    "Delete workload {name}? This cannot be undone.",
	"danger.delete_db_warning": "The linked database and all its data will be deleted as well.",
	"danger.deleted":           "Workload deleted.",

	"dashboard.load_error": "Could not load the workload: {error}",

	"errors.PROJECT_NAME_TAKEN":          "This project name is already taken.",
	"errors.OWNER_ALREADY_EXISTS":        "You already own a project. Only one is allowed per user.",
	"errors.INVALID_PROJECT_NAME":        "The project name is invalid. Use only letters, numbers, and hyphens.",
	"errors.INVALID_IMAGE_URL":           "The provided image URL is invalid or contains forbidden characters.",
	"errors.IMAGE_SCAN_FAILED":           "Security scan failed: vulnerabilities were found in the image.",
	"errors.CLIENT_ERROR":                "An unexpected client-side error occurred. Please try again.",
	"errors.DELETE_FAILED":               "Failed to delete the project.",
	"errors.HTTP_ERROR_500":              "An internal server error occurred. Please try again later or contact support.",
	"errors.UNAUTHORIZED":                "Your session has expired. Please log in again.",
	"errors.OWNER_CANNOT_BE_PARTICIPANT": "The project owner cannot be added as a participant.",
	"errors.GITHUB_ACCOUNT_NOT_LINKED":   "Your GitHub account is not linked. You must link it to deploy from a repository.",
	"errors.GITHUB_REPO_NOT_ACCESSIBLE":  "The app does not have access to this repository. Please update your installation permissions, then try again.",
	"errors.GITHUB_PACKAGE_NOT_PUBLIC":   "Direct deployment from ghcr.io failed. Please ensure your package is set to 'Public'.",
	"errors.DATABASE_ALREADY_EXISTS":     "You already own a database. Only one is allowed per user.",
	"errors.LINK_FAILED":                 "Failed to link the database to the project.",
	"errors.NOT_FOUND":                   "The requested resource was not found.",
	"errors.DEFAULT":                     "An unexpected error occurred. Please contact an administrator.",
}

// T looks up a message by key. Unknown keys return the key itself so a
// missing entry is visible instead of silent.
func T(key string) string {
	if msg, ok := table[key]; ok {
		return msg
	}
	return key
}

// Replace substitutes a single {placeholder} in a looked-up message.
func Replace(key, placeholder, value string) string {
	return strings.ReplaceAll(T(key), "{"+placeholder+"}", value)
}

// Status renders a raw run-state as a badge label. Unrecognized states map
// to the unknown badge rather than failing.
func Status(raw string) string {
	if msg, ok := table["status_"+raw]; ok {
		return msg
	}
	return table["status_unknown"]
}

// ErrorMessage resolves an API error code to a localized message, falling
// back to the generic DEFAULT entry for codes without a translation.
func ErrorMessage(code string) string {
	if msg, ok := table["errors."+code]; ok {
		return msg
	}
	return table["errors.DEFAULT"]
}
