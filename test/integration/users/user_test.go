package users_test

import (
	"net/http"
	"net/url"
	"testing"

	"drportal/pkg/model"
	"drportal/test/integration/testutil"
)

func TestUserLifecycle(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	const email = "jane@example.com"

	var token string
	t.Run("profile upsert issues a token", func(t *testing.T) {
		resp := client.PUT(t, "/user/"+url.PathEscape(email), testutil.ValidProfile(email))
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var body struct {
			Token string `json:"token"`
		}
		if err := resp.UnmarshalJSON(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Token == "" {
			t.Fatal("expected a token in the upsert response")
		}
		token = body.Token
	})

	t.Run("repeat upsert updates, not duplicates", func(t *testing.T) {
		profile := testutil.ValidProfile(email)
		profile.Address = "12 New Street"

		resp := client.PUT(t, "/user/"+url.PathEscape(email), profile)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		if got := mongo.CountDocuments(t, testutil.UsersCollection); got != 1 {
			t.Fatalf("expected 1 user, got %d", got)
		}
	})

	t.Run("role cannot be set through upsert", func(t *testing.T) {
		profile := testutil.ValidProfile(email)
		profile.Role = model.RoleAdmin

		resp := client.PUT(t, "/user/"+url.PathEscape(email), profile)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		status := client.GET(t, "/admin/"+url.PathEscape(email))
		testutil.AssertStatusCode(t, status, http.StatusOK)
		testutil.AssertContains(t, status, `"admin":false`)
	})

	t.Run("admin status of unknown user is not found", func(t *testing.T) {
		resp := client.GET(t, "/admin/nobody@example.com")
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("user listing requires a token", func(t *testing.T) {
		resp := client.GET(t, "/users")
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)

		authed := client.WithToken(token).GET(t, "/users")
		testutil.AssertStatusCode(t, authed, http.StatusOK)
	})

	t.Run("promotion is admin-gated", func(t *testing.T) {
		const target = "colleague@example.com"
		resp := client.PUT(t, "/user/"+url.PathEscape(target), testutil.ValidProfile(target))
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		denied := client.WithToken(token).PUT(t, "/user/admin/"+url.PathEscape(target), nil)
		testutil.AssertStatusCode(t, denied, http.StatusForbidden)

		mongo.PromoteUser(t, email)

		granted := client.WithToken(token).PUT(t, "/user/admin/"+url.PathEscape(target), nil)
		testutil.AssertStatusCode(t, granted, http.StatusOK)

		status := client.GET(t, "/admin/"+url.PathEscape(target))
		testutil.AssertStatusCode(t, status, http.StatusOK)
		testutil.AssertContains(t, status, `"admin":true`)
	})
}

func TestDoctorManagement(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	const adminEmail = "admin@example.com"
	resp := client.PUT(t, "/user/"+url.PathEscape(adminEmail), testutil.ValidProfile(adminEmail))
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var body struct {
		Token string `json:"token"`
	}
	if err := resp.UnmarshalJSON(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	mongo.PromoteUser(t, adminEmail)
	admin := client.WithToken(body.Token)

	doctor := testutil.ValidDoctor()

	t.Run("create requires admin", func(t *testing.T) {
		denied := client.POST(t, "/doctor", doctor)
		testutil.AssertStatusCode(t, denied, http.StatusUnauthorized)

		created := admin.POST(t, "/doctor", doctor)
		testutil.AssertStatusCode(t, created, http.StatusOK)
	})

	t.Run("listing returns the doctor", func(t *testing.T) {
		resp := admin.GET(t, "/doctors")
		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertContains(t, resp, doctor.Email)
	})

	t.Run("delete removes by email", func(t *testing.T) {
		resp := admin.DELETE(t, "/doctors/"+url.PathEscape(doctor.Email))
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		if got := mongo.CountDocuments(t, testutil.DoctorsCollection); got != 0 {
			t.Fatalf("expected 0 doctors after delete, got %d", got)
		}

		missing := admin.DELETE(t, "/doctors/"+url.PathEscape(doctor.Email))
		testutil.AssertStatusCode(t, missing, http.StatusNotFound)
	})
}
