package userctx

import "context"

// Context key type
type contextKey string

const userEmailKey contextKey = "user_email"
const userIDKey contextKey = "user_id"
const adminKey contextKey = "admin"

// SetUserEmail adds user email to request context
func SetUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// GetUserEmail retrieves user email from request context
func GetUserEmail(ctx context.Context) string {
	email, _ := ctx.Value(userEmailKey).(string)
	return email
}

// SetUserID adds the logged-in user ID to request context
func SetUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID retrieves the logged-in user ID from request context
func GetUserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// SetAdmin adds the administrator identity to request context
func SetAdmin(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, adminKey, name)
}

// GetAdmin retrieves the administrator identity from request context
func GetAdmin(ctx context.Context) string {
	name, _ := ctx.Value(adminKey).(string)
	return name
}

// Identity returns the most specific acting identity, or "anonymous"
func Identity(ctx context.Context) string {
	if admin := GetAdmin(ctx); admin != "" {
		return admin
	}
	if email := GetUserEmail(ctx); email != "" {
		return email
	}
	return "anonymous"
}
