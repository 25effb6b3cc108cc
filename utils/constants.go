package utils

// AuthSessionPrefix is the prefix used for Redis session keys.
const AuthSessionPrefix = "authSession:"

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "keshwala_session"
