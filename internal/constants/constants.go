package constants

// SessionCookieName is the cookie holding the login session.
const SessionCookieName = "triager_session"

// ContextKeyUserID is the key under which the authenticated user ID is
// stored in both the session and the gin context.
const ContextKeyUserID = "user_id"

// MaxCommentLength bounds the free-text comment on reports and tasks.
const MaxCommentLength = 1000

// DateLayout is the wire format of every date field submitted by the
// HTML forms (input type="date").
const DateLayout = "2006-01-02"
