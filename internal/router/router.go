package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sanedge/blog-api/internal/api/auth"
	"github.com/sanedge/blog-api/internal/container"
)

// SetupRouter configures the application routes. Server-wide middleware
// (request id, logger, recoverer) is applied before mounting this router
// in main.go.
func SetupRouter(c *container.Container) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", c.AuthHandler.Register)
			r.Post("/auth/login", c.AuthHandler.Login)

			r.Get("/categories", c.CategoryHandler.GetCategories)
			r.Get("/categories/{id}", c.CategoryHandler.GetCategory)
			r.Post("/categories", c.CategoryHandler.CreateCategory)
			r.Put("/categories/{id}", c.CategoryHandler.UpdateCategory)
			r.Delete("/categories/{id}", c.CategoryHandler.DeleteCategory)

			r.Get("/posts", c.PostHandler.GetPosts)
			r.Get("/posts/{id}", c.PostHandler.GetPost)
			r.Get("/posts/{id}/relation", c.PostHandler.GetPostRelation)
			r.Post("/posts", c.PostHandler.CreatePost)
			r.Put("/posts/{id}", c.PostHandler.UpdatePost)
			r.Delete("/posts/{id}", c.PostHandler.DeletePost)

			r.Get("/comments", c.CommentHandler.GetComments)
			r.Get("/comments/{id}", c.CommentHandler.GetComment)
			r.Post("/comments", c.CommentHandler.CreateComment)
			r.Put("/comments/{id}", c.CommentHandler.UpdateComment)
			r.Delete("/comments/{id}", c.CommentHandler.DeleteComment)
		})

		// Protected routes.
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate(c.Logger, c.AuthService))

			r.Get("/auth/me", c.AuthHandler.Me)

			r.Post("/users", c.UserHandler.Create)
			r.Get("/users/email/{email}", c.UserHandler.FindByEmail)
			r.Put("/users/{id}", c.UserHandler.Update)
			r.Delete("/users/{email}", c.UserHandler.Delete)
		})
	})

	return r
}
