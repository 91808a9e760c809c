package socialuni

import (
	"socialuni/internal/core"
)

// The backend exposes the same logical data under an administrative and a
// scoped/public path. Selection happens here, once, from the normalized
// role; call sites never re-derive it.
type operation int

const (
	opFetchUserByID operation = iota
	opFetchAllPosts
	opFetchPostByID
	opFetchAllGroups
	opFetchGroupByID
	opFilterPostsByCategory
	opFetchPostsByDateRange
	opFetchTrendingPosts
)

var endpoints = map[operation]struct{ admin, scoped string }{
	opFetchUserByID:         {"/admin/users/%d", "/users/%d"},
	opFetchAllPosts:         {"/admin/posts", "/posts"},
	opFetchPostByID:         {"/admin/posts/%d", "/posts/%d"},
	opFetchAllGroups:        {"/admin/groups", "/groups"},
	opFetchGroupByID:        {"/admin/groups/%d", "/groups/%d"},
	opFilterPostsByCategory: {"/admin/posts/category/%s", "/posts/category/%s"},
	opFetchPostsByDateRange: {"/admin/posts/range", "/posts/range"},
	opFetchTrendingPosts:    {"/admin/posts/trending", "/posts/trending"},
}

// publicPostPath is the third tier of the post fetch fallback: explicitly
// public post visibility, reachable without any session.
const publicPostPath = "/posts/%d/public"

// resolve picks the endpoint variant for a role. Only an admin gets the
// admin path; moderators and plain users use scoped endpoints, and an
// absent session means scoped/public too.
func resolve(op operation, role core.Role) string {
	paths := endpoints[op]
	if role == core.RoleAdmin {
		return paths.admin
	}
	return paths.scoped
}
