package sessions_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"green-hash-api/sessions"

	"github.com/gofiber/fiber/v2"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestCookieStore(t *testing.T) {
	store := sessions.NewCookieStore(sessions.Config{CookieName: "sid"})

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		return store.Save(c, sessions.Wallet{WalletAddress: "0xabc", UserID: 9})
	})
	app.Get("/me", func(c *fiber.Ctx) error {
		w, err := store.Load(c)
		if errors.Is(err, sessions.ErrNoSession) {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"wallet_address": w.WalletAddress, "user_id": w.UserID})
	})

	t.Log("Given the need to bind a wallet to a session cookie.")
	{
		t.Logf("\tTest 0:\tWhen no cookie is presented.")
		{
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to make the request : %v", failed, err)
			}
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("\t%s\tTest 0:\tShould report no session : got %d", failed, resp.StatusCode)
			}
			t.Logf("\t%s\tTest 0:\tShould report no session.", success)
		}

		t.Logf("\tTest 1:\tWhen the cookie from a save is presented.")
		{
			resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to save : %v", failed, err)
			}

			var cookie *http.Cookie
			for _, ck := range resp.Cookies() {
				if ck.Name == "sid" {
					cookie = ck
				}
			}
			if cookie == nil || cookie.Value == "" {
				t.Fatalf("\t%s\tTest 1:\tShould issue a session cookie.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould issue a session cookie.", success)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.AddCookie(cookie)
			resp, err = app.Test(req)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to load : %v", failed, err)
			}
			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("\t%s\tTest 1:\tShould find the session : got %d %s", failed, resp.StatusCode, body)
			}
			if want := `{"user_id":9,"wallet_address":"0xabc"}`; string(body) != want {
				t.Fatalf("\t%s\tTest 1:\tShould return the saved wallet : got %s", failed, body)
			}
			t.Logf("\t%s\tTest 1:\tShould return the saved wallet.", success)
		}
	}
}
