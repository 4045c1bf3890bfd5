package middleware

import (
	"strings"
	"time"

	"github.com/codeclinic/code_clinic/database"
	"github.com/codeclinic/code_clinic/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const accountIDKey = "account_id"

// Store holds the cookie sessions. InitSessionStore must run before
// any handler touches it.
var Store *session.Store

func InitSessionStore() {
	Store = session.New(session.Config{
		Expiration:     72 * time.Hour,
		CookieHTTPOnly: true,
	})
}

// EstablishSession records the account in the caller's session.
func EstablishSession(c *fiber.Ctx, accountID uuid.UUID) error {
	sess, err := Store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(accountIDKey, accountID.String())
	return sess.Save()
}

// EndSession drops the caller's session.
func EndSession(c *fiber.Ctx) error {
	sess, err := Store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// RequireSession loads the account referenced by the session and makes
// it available via CurrentAccount. API routes get a 401, page routes a
// redirect to the login page.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := Store.Get(c)
		if err != nil {
			return unauthenticated(c)
		}

		raw, ok := sess.Get(accountIDKey).(string)
		if !ok || raw == "" {
			return unauthenticated(c)
		}
		accountID, err := uuid.Parse(raw)
		if err != nil {
			return unauthenticated(c)
		}

		var account models.User
		if err := database.DB.First(&account, "id = ?", accountID).Error; err != nil {
			return unauthenticated(c)
		}

		c.Locals("account", &account)
		return c.Next()
	}
}

// VolunteerRequired gates a route to volunteer accounts. Must run
// after RequireSession.
func VolunteerRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !CurrentAccount(c).IsVolunteer {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: volunteer access required",
			})
		}
		return c.Next()
	}
}

// CurrentAccount returns the account loaded by RequireSession.
func CurrentAccount(c *fiber.Ctx) *models.User {
	return c.Locals("account").(*models.User)
}

func unauthenticated(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
