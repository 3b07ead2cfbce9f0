package middleware

import (
	"net/http"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/cookie"
	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key of the loaded session
const SessionKey = "session"

// Sessions loads the browser session named by the cookie and puts it on the request context.
// Once the handler is done the cookie is re-issued under the session's current ID and the
// session is saved. A new session that is still blank gets neither a cookie nor a record.
// On store failure it hands the request to onError.
func Sessions(sessions usecase.SessionUseCase, codec *cookie.Codec, logger coreport.Logger, onError gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var id string
		if raw, err := c.Cookie(codec.Name()); err == nil && raw != "" {
			if id, err = codec.Decode(raw); err != nil {
				logger.Debug("Ignoring invalid session cookie", map[string]any{
					"error":      err.Error(),
					"request_id": coreport.RequestIDFromContext(ctx),
				})
			}
		}

		session, err := sessions.Load(ctx, id)
		if err != nil {
			logger.Error("Failed to load session", map[string]any{
				"error":      err,
				"request_id": coreport.RequestIDFromContext(ctx),
			})
			_ = c.Error(err)
			c.Status(http.StatusServiceUnavailable)
			onError(c)
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Request = c.Request.WithContext(entity.WithSession(ctx, session))

		keep := func() bool {
			if c.GetBool(sessionDestroyedKey) {
				return false
			}
			return session.ID == id || !session.Blank()
		}

		writer := &sessionWriter{ResponseWriter: c.Writer}
		writer.beforeWrite = func() {
			if !keep() {
				return
			}
			if ck, err := codec.Cookie(session.ID); err == nil {
				http.SetCookie(writer.ResponseWriter, ck)
			} else {
				logger.Error("Failed to sign session cookie", map[string]any{"error": err})
			}
		}
		c.Writer = writer

		c.Next()

		writer.commit()
		if !keep() {
			return
		}
		if err := sessions.Save(c.Request.Context(), session); err != nil {
			logger.Error("Failed to save session", map[string]any{
				"session_id": session.ID,
				"error":      err,
				"request_id": coreport.RequestIDFromContext(ctx),
			})
		}
	}
}

// sessionWriter sets the session cookie right before the response headers go out,
// so the cookie reflects what the handler did to the session
type sessionWriter struct {
	gin.ResponseWriter
	beforeWrite func()
	committed   bool
}

func (w *sessionWriter) commit() {
	if w.committed || w.ResponseWriter.Written() {
		w.committed = true
		return
	}
	w.committed = true
	w.beforeWrite()
}

func (w *sessionWriter) WriteHeaderNow() {
	w.commit()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionWriter) Write(data []byte) (int, error) {
	w.commit()
	return w.ResponseWriter.Write(data)
}

func (w *sessionWriter) WriteString(s string) (int, error) {
	w.commit()
	return w.ResponseWriter.WriteString(s)
}

func (w *sessionWriter) Flush() {
	w.commit()
	w.ResponseWriter.Flush()
}

const sessionDestroyedKey = "session_destroyed"

// DestroySession deletes the current session and expires its cookie. The request's
// session is not saved afterwards.
func DestroySession(c *gin.Context, sessions usecase.SessionUseCase, codec *cookie.Codec) error {
	c.Set(sessionDestroyedKey, true)
	http.SetCookie(c.Writer, codec.Expired())
	if s := entity.SessionFromContext(c.Request.Context()); s != nil {
		return sessions.Destroy(c.Request.Context(), s)
	}
	return nil
}
