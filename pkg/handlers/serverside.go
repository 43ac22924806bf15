package handlers

import (
	"crypto/sha1"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/pbkdf2"
	"gorm.io/gorm"

	"github.com/skydash/skydash/pkg/data"
	"github.com/skydash/skydash/pkg/metrics"
	"github.com/skydash/skydash/pkg/report"
)

const (
	sessionName = "night-sky"
	userID      = "userid"
	// See https://developer.chrome.com/blog/cookie-max-age-expires.
	defaultMaxAge = 60 * 60 * 24 * 400 // 400 days in seconds.
)

// Default observer when nothing is saved: New York.
const (
	defaultLat = 40.7128
	defaultLng = -74.0060
)

var store = &sessions.CookieStore{
	Codecs: securecookie.CodecsFromPairs(
		getSessionKey(),
		getEncryptionKey(),
	),
	Options: &sessions.Options{
		Path:     "/",
		MaxAge:   defaultMaxAge,
		Secure:   true,
		HttpOnly: true,
	},
}

func init() {
	store.MaxAge(defaultMaxAge)
}

// TemplateInput feeds the index template.
type TemplateInput struct {
	Report     report.Report
	MoonSVG    template.HTML
	StarMapSVG template.HTML
	UserName   string
	// CanConfigure hides the saved-location link when no database is
	// wired up, since /config is not routed then.
	CanConfigure bool
}

// makeServerSideIndex serves tonight's sky fully rendered on the server.
func makeServerSideIndex(deps Deps) http.HandlerFunc {
	indexTemplate := template.Must(template.ParseFS(content, "static/index.template.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, sessionName)
		metrics.ObserveUserRequest(session.Values[userID])
		if err := session.Save(r, w); err != nil {
			log.Println("save session err", err)
		}

		req := report.Request{
			Date:      time.Now().UTC().Format(report.DateLayout),
			Latitude:  defaultLat,
			Longitude: defaultLng,
		}
		user := userFromSession(deps.DB, session)
		if user != nil {
			if user.Latitude != nil && user.Longitude != nil {
				req.Latitude = *user.Latitude
				req.Longitude = *user.Longitude
			}
			req.MoonLightColor = user.MoonLightColor
		}
		if dateStr := r.FormValue("date"); dateStr != "" {
			req.Date = dateStr
		}

		rep, err := report.Build(req)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Failed to build sky report: %+v", err)
			log.Printf("Failed to build sky report: %+v", err)
			return
		}

		tinput := TemplateInput{
			Report:       rep,
			MoonSVG:      template.HTML(rep.MoonPhase.SVG),
			StarMapSVG:   template.HTML(rep.StarMapSVG),
			CanConfigure: deps.DB != nil,
		}
		if user != nil {
			tinput.UserName = user.Name
		}

		w.Header().Add("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		if err := indexTemplate.Execute(w, tinput); err != nil {
			log.Printf("Failed to execute template: %v", err)
		}
	}
}

// userFromSession loads the session's user row, if there is a database and
// a saved id. Lookup failures just mean default preferences.
func userFromSession(db *gorm.DB, s *sessions.Session) *data.User {
	if db == nil {
		return nil
	}
	id, ok := s.Values[userID]
	if !ok {
		return nil
	}

	var user data.User
	if r := db.First(&user, id); r.Error != nil {
		log.Printf("Failed to find user %v: %v", id, r.Error)
		return nil
	}
	if !user.LastSeen.IsZero() {
		log.Printf("User %d (%q) was last seen %s ago", user.ID, user.Name, time.Since(user.LastSeen))
	}
	user.LastSeen = time.Now()
	db.Save(&user)
	return &user
}

// makeConfigLocation serves and accepts the saved-location form.
func makeConfigLocation(deps Deps) http.HandlerFunc {
	configTemplate := template.Must(template.ParseFS(content, "static/config.template.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, sessionName)
		metrics.ObserveUserRequest(session.Values[userID])

		if r.Method == http.MethodGet {
			session.Save(r, w)
			user := userFromSession(deps.DB, session)
			if err := configTemplate.Execute(w, user); err != nil {
				log.Printf("Failed to write config template: %v", err)
			}
			return
		}
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := r.ParseForm(); err != nil {
			msg := fmt.Sprintf("Failed to parse form: %v", err)
			log.Println(msg)
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, msg)
			return
		}

		var user data.User
		if id, ok := session.Values[userID].(uint); ok {
			// Read-modify-write if the user provided an id.
			// Otherwise, one will be generated with db.Save later.
			deps.DB.First(&user, id)
		}
		if f, err := strconv.ParseFloat(r.PostForm.Get("lat"), 64); err == nil && f >= -90 && f <= 90 {
			user.Latitude = &f
		} else {
			user.Latitude = nil
		}
		if f, err := strconv.ParseFloat(r.PostForm.Get("lng"), 64); err == nil && f >= -180 && f <= 180 {
			user.Longitude = &f
		} else {
			user.Longitude = nil
		}
		user.MoonLightColor = r.PostForm.Get("moon_color")
		user.Name = r.PostForm.Get("name")
		user.LastSeen = time.Now()

		if tx := deps.DB.Save(&user); tx.Error != nil {
			msg := fmt.Sprintf("Failed to save preferences: %v", tx.Error)
			log.Println(msg)
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, msg)
			return
		}
		session.Values[userID] = user.ID
		session.Save(r, w)

		http.Redirect(w, r, deps.Prefix, http.StatusFound)
	}
}

// getSessionKey returns a key to authenticate session cookies, defined in
// the environment. If it is not set, it uses a compile-time default.
func getSessionKey() []byte {
	defaultKey := []byte("deadbeef")
	if key := os.Getenv("SESSION_KEY"); key != "" {
		return []byte(key)
	}
	return defaultKey
}

func getEncryptionKey() []byte {
	password := "deadbeef"
	if fromEnv := os.Getenv("ENCRYPTION_KEY"); fromEnv != "" {
		password = fromEnv
	}
	return pbkdf2.Key([]byte(password), []byte{}, 4096, 32, sha1.New)
}
