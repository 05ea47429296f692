// Package web is the local gateway that lets a UI observe the
// controller state over HTTP. It exposes the screens as JSON and the
// user actions as routes, mirroring the client-side routes of the
// browser app: /, /feed, /admin, anything else back to login.
package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"feedboard/internal/controller"
	"feedboard/internal/domain"
	"feedboard/internal/listing"
	"feedboard/internal/session"
)

// Handler wires HTTP routes to the screen controllers.
type Handler struct {
	login    *controller.Login
	feed     *controller.Feed
	admin    *controller.Admin
	users    *controller.UserManagement
	sessions *session.Manager
	logger   *logrus.Logger
}

func NewHandler(
	login *controller.Login,
	feed *controller.Feed,
	admin *controller.Admin,
	users *controller.UserManagement,
	sessions *session.Manager,
	logger *logrus.Logger,
) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		login:    login,
		feed:     feed,
		admin:    admin,
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/", h.loginState)
	router.POST("/login", h.submitLogin)
	router.POST("/logout", h.logout)

	feed := router.Group("/feed")
	feed.Use(h.requireSession())
	{
		feed.GET("", h.feedState)
		feed.POST("/posts", h.createPost)
		feed.PUT("/posts/:id", h.updatePost)
		feed.DELETE("/posts/:id", h.deletePost)
		feed.POST("/posts/:id/comments", h.addComment)
		feed.PUT("/comments/:id", h.updateComment)
		feed.DELETE("/comments/:id", h.deleteComment)
		feed.POST("/posts/:id/like", h.likePost)
		feed.POST("/posts/:id/dislike", h.dislikePost)
	}

	admin := router.Group("/admin")
	admin.Use(h.requireSession())
	{
		admin.GET("", h.adminState)
		admin.POST("/section", h.setSection)
		admin.POST("/sidebar/toggle", h.toggleSidebar)
		admin.POST("/users", h.addUser)
	}

	router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, controller.RouteLogin)
	})
}

// requireSession steers unauthenticated requests back to the login
// route. It is a UI affordance, not an authorization boundary; the
// backend authorizes every forwarded call on its own.
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.sessions.IsLoggedIn(c.Request.Context()) {
			c.Redirect(http.StatusFound, controller.RouteLogin)
			c.Abort()
			return
		}
		c.Next()
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) loginState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loggedIn":       h.sessions.IsLoggedIn(c.Request.Context()),
		"submitted":      h.login.Submitted(),
		"emailError":     h.login.EmailError(),
		"passwordError":  h.login.PasswordError(),
		"errorMessage":   h.login.ErrorMessage(),
		"successMessage": h.login.SuccessMessage(),
	})
}

func (h *Handler) submitLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.login.Submit(c.Request.Context(), req.Email, req.Password) {
		c.JSON(http.StatusOK, gin.H{
			"successMessage": h.login.SuccessMessage(),
			"redirect":       controller.RouteFeed,
		})
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{
		"emailError":    h.login.EmailError(),
		"passwordError": h.login.PasswordError(),
		"errorMessage":  h.login.ErrorMessage(),
	})
}

func (h *Handler) logout(c *gin.Context) {
	h.admin.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"redirect": controller.RouteLogin})
}

func (h *Handler) feedState(c *gin.Context) {
	if author, ok := c.GetQuery("author"); ok {
		h.feed.SetAuthorFilter(author)
	}
	if sortKey, ok := c.GetQuery("sort"); ok {
		h.feed.SetSortKey(listing.SortKey(sortKey))
	}
	h.feed.Load(c.Request.Context())

	posts := h.feed.VisiblePosts()
	views := make([]postView, len(posts))
	for i := range posts {
		views[i] = h.postToView(c, posts[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"loading":      h.feed.Loading(),
		"posts":        views,
		"errorMessage": h.feed.ErrorMessage(),
	})
}

type postView struct {
	domain.Post
	Trending bool `json:"trending"`
	CanEdit  bool `json:"canEdit"`
}

func (h *Handler) postToView(c *gin.Context, post domain.Post) postView {
	return postView{
		Post:     post,
		Trending: listing.IsTrendingPost(post),
		CanEdit:  h.feed.CanEditPost(c.Request.Context(), post),
	}
}

type postRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) createPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.feed.CreatePost(c.Request.Context(), req.Title, req.Content) {
		c.JSON(http.StatusBadGateway, gin.H{"errorMessage": h.feed.ErrorMessage()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (h *Handler) updatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.feed.UpdatePost(c.Request.Context(), id, req.Title, req.Content) {
		c.JSON(http.StatusBadGateway, gin.H{"errorMessage": h.feed.ErrorMessage()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.feed.DeletePost(c.Request.Context(), id) {
		c.JSON(http.StatusBadGateway, gin.H{"errorMessage": h.feed.ErrorMessage()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) addComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.feed.AddComment(c.Request.Context(), id, req.Content) {
		c.JSON(http.StatusBadGateway, gin.H{"errorMessage": h.feed.ErrorMessage()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (h *Handler) updateComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.feed.UpdateComment(c.Request.Context(), id, req.Content) {
		c.JSON(http.StatusBadGateway, gin.H{"errorMessage": h.feed.ErrorMessage()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) deleteComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.feed.DeleteComment(c.Request.Context(), id) {
		c.JSON(http.StatusBadGateway, gin.H{"errorMessage": h.feed.ErrorMessage()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) likePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.feed.Like(c.Request.Context(), id) {
		c.JSON(http.StatusBadGateway, gin.H{"errorMessage": h.feed.ErrorMessage()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) dislikePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.feed.Dislike(c.Request.Context(), id) {
		c.JSON(http.StatusBadGateway, gin.H{"errorMessage": h.feed.ErrorMessage()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) adminState(c *gin.Context) {
	if !h.admin.Enter(c.Request.Context()) {
		c.Redirect(http.StatusFound, controller.RouteLogin)
		return
	}

	if term, ok := c.GetQuery("search"); ok {
		h.users.SetSearchTerm(term)
	}
	if role, ok := c.GetQuery("role"); ok {
		h.users.SetRoleFilter(role)
	}
	if by, ok := c.GetQuery("sortBy"); ok {
		h.users.SetSort(listing.UserSortField(by))
	}
	h.users.LoadUsers(c.Request.Context())

	users := h.users.FilteredUsers()
	views := make([]userView, len(users))
	for i := range users {
		views[i] = userToView(users[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"adminName":        h.admin.AdminName(),
		"adminRole":        h.admin.AdminRole(),
		"activeSection":    h.admin.ActiveSection(),
		"sidebarCollapsed": h.admin.SidebarCollapsed(),
		"users":            views,
		"stats":            h.users.Stats(),
		"errorMessage":     h.users.ErrorMessage(),
		"successMessage":   h.users.SuccessMessage(),
	})
}

type userView struct {
	domain.User
	StartDateDisplay string `json:"startDateDisplay"`
	RoleDisplay      string `json:"roleDisplay"`
}

func userToView(user domain.User) userView {
	return userView{
		User:             user,
		StartDateDisplay: listing.FormatDate(user.StartDate),
		RoleDisplay:      listing.FormatRole(user.Role),
	}
}

type sectionRequest struct {
	Section string `json:"section" binding:"required"`
}

func (h *Handler) setSection(c *gin.Context) {
	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.admin.SetActiveSection(req.Section)
	c.JSON(http.StatusOK, gin.H{"activeSection": h.admin.ActiveSection()})
}

func (h *Handler) toggleSidebar(c *gin.Context) {
	h.admin.ToggleSidebar()
	c.JSON(http.StatusOK, gin.H{"sidebarCollapsed": h.admin.SidebarCollapsed()})
}

func (h *Handler) addUser(c *gin.Context) {
	var req domain.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.users.SetNewUser(req)
	if !h.users.AddUser(c.Request.Context()) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errorMessage": h.users.ErrorMessage()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"successMessage": h.users.SuccessMessage()})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
