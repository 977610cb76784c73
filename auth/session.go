package auth

import (
	"net/http"

	"Vitals360/config"
	"Vitals360/db"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/mongo/mongodriver"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	SessionName = "vitals_session"
	userIdKey   = "userId"
	usernameKey = "username"
)

// NewStore builds the cookie-referenced session store backed by the sessions
// collection of the application database. The store maintains its own TTL
// index so expired sessions fall out on their own.
func NewStore(database *mongo.Database, cfg config.Config) sessions.Store {
	coll := database.Collection(db.SessionCollection)
	return mongodriver.NewStore(coll, cfg.SessionMaxAge, true, []byte(cfg.SessionSecret))
}

// CurrentUserID reports the authenticated user for this request, if any.
func CurrentUserID(c *gin.Context) (string, bool) {
	session := sessions.Default(c)
	userId, ok := session.Get(userIdKey).(string)
	return userId, ok && userId != ""
}

func SetUser(c *gin.Context, userId, username string) error {
	session := sessions.Default(c)
	session.Set(userIdKey, userId)
	session.Set(usernameKey, username)
	return session.Save()
}

func ClearUser(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// RequirePage redirects page requests to the login page when no session
// user is present. API handlers answer 401 themselves instead.
func RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
