package session

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studytrackr/internal/pkg/jwtutil"
)

const stateContextKey = "session.state"

type Options struct {
	CookieName string
	Secret     string
	TTL        time.Duration
	Secure     bool
}

// Manager binds a Store to gin requests. Every mutation is written to the
// store and the cookie immediately so it survives the redirect that follows.
type Manager struct {
	store Store
	opts  Options
}

type state struct {
	id   string
	data Data
}

func NewManager(store Store, opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "studytrackr_session"
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	return &Manager{store: store, opts: opts}
}

// Load attaches the request's session to c. A missing, tampered or expired
// cookie leaves an empty anonymous session; only store failures are returned.
func (m *Manager) Load(c *gin.Context) error {
	st := &state{}
	c.Set(stateContextKey, st)

	raw, err := c.Cookie(m.opts.CookieName)
	if err != nil || raw == "" {
		return nil
	}
	claims, err := jwtutil.ParseToken(m.opts.Secret, raw)
	if err != nil {
		return nil
	}

	data, ok, err := m.store.Load(c.Request.Context(), claims.SessionID())
	if err != nil {
		return err
	}
	if ok {
		st.id = claims.SessionID()
		st.data = *data
	}
	return nil
}

func (m *Manager) CurrentUser(c *gin.Context) (Identity, bool) {
	st := m.state(c)
	if st.data.Identity == nil || st.data.Identity.UserID == 0 {
		return Identity{}, false
	}
	return *st.data.Identity, true
}

// Establish logs identity in under a fresh session id and drops the old record.
func (m *Manager) Establish(c *gin.Context, identity Identity) error {
	st := m.state(c)
	previous := st.id

	st.id = uuid.NewString()
	st.data.Identity = &identity
	if err := m.persist(c, st); err != nil {
		return err
	}

	if previous != "" {
		if err := m.store.Delete(c.Request.Context(), previous); err != nil {
			return fmt.Errorf("drop previous session failed: %w", err)
		}
	}
	return nil
}

func (m *Manager) Clear(c *gin.Context) error {
	st := m.state(c)
	id := st.id
	*st = state{}
	m.writeCookie(c, "", -1)

	if id == "" {
		return nil
	}
	return m.store.Delete(c.Request.Context(), id)
}

func (m *Manager) AddFlash(c *gin.Context, kind, message string) error {
	st := m.state(c)
	if st.id == "" {
		st.id = uuid.NewString()
	}
	st.data.Flashes = append(st.data.Flashes, Flash{Kind: kind, Message: message})
	return m.persist(c, st)
}

// PopFlashes returns pending notices and removes them from the session.
func (m *Manager) PopFlashes(c *gin.Context) ([]Flash, error) {
	st := m.state(c)
	if len(st.data.Flashes) == 0 {
		return nil, nil
	}
	flashes := st.data.Flashes
	st.data.Flashes = nil
	if err := m.persist(c, st); err != nil {
		return flashes, err
	}
	return flashes, nil
}

func (m *Manager) state(c *gin.Context) *state {
	if v, ok := c.Get(stateContextKey); ok {
		if st, ok := v.(*state); ok {
			return st
		}
	}
	st := &state{}
	c.Set(stateContextKey, st)
	return st
}

func (m *Manager) persist(c *gin.Context, st *state) error {
	if err := m.store.Save(c.Request.Context(), st.id, &st.data, m.opts.TTL); err != nil {
		return err
	}
	token, err := jwtutil.GenerateToken(m.opts.Secret, m.opts.TTL, st.id)
	if err != nil {
		return err
	}
	m.writeCookie(c, token, int(m.opts.TTL.Seconds()))
	return nil
}

// writeCookie replaces any session cookie already queued on the response.
func (m *Manager) writeCookie(c *gin.Context, value string, maxAge int) {
	header := c.Writer.Header()
	prefix := m.opts.CookieName + "="
	var kept []string
	for _, line := range header.Values("Set-Cookie") {
		if !strings.HasPrefix(line, prefix) {
			kept = append(kept, line)
		}
	}
	header.Del("Set-Cookie")
	for _, line := range kept {
		header.Add("Set-Cookie", line)
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
