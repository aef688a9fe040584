package main

import (
	"context"
	"crypto/subtle"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/schemaroute/pkg/sanitizer"
	"github.com/dmitrymomot/schemaroute/pkg/validator"
	"github.com/dmitrymomot/schemaroute/route"
	"github.com/dmitrymomot/schemaroute/schema"
)

type item struct {
	ID        string    `json:"id"`
	ListID    string    `json:"list_id"`
	Name      string    `json:"name"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type createItemBody struct {
	Name string   `json:"name" form:"name"`
	Tags []string `json:"tags" form:"tags"`
}

type listContext struct {
	ListID string `path:"list_id"`
}

type searchQuery struct {
	Tags  []string `query:"tag"`
	Limit int      `query:"limit"`
}

type adminHeaders struct {
	Token string `header:"X-Admin-Token"`
}

type itemList struct {
	Items []item `json:"items"`
	Total int    `json:"total"`
}

type stats struct {
	Lists int `json:"lists"`
	Items int `json:"items"`
}

type itemStore struct {
	mu    sync.RWMutex
	lists map[string][]item
}

func newItemStore() *itemStore {
	return &itemStore{lists: make(map[string][]item)}
}

func (s *itemStore) add(listID string, body createItemBody) item {
	it := item{
		ID:        uuid.NewString(),
		ListID:    listID,
		Name:      body.Name,
		Tags:      body.Tags,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.lists[listID] = append(s.lists[listID], it)
	s.mu.Unlock()
	return it
}

func (s *itemStore) search(listID string, tags []string, limit int) []item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []item{}
	for _, it := range s.lists[listID] {
		if len(out) == limit {
			break
		}
		if len(tags) > 0 && !slices.ContainsFunc(tags, func(t string) bool { return slices.Contains(it.Tags, t) }) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s *itemStore) stats() stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := stats{Lists: len(s.lists)}
	for _, items := range s.lists {
		st.Items += len(items)
	}
	return st
}

func (s *itemStore) ping(ctx context.Context) error {
	return ctx.Err()
}

var (
	listContextSchema = schema.Rules(func(v listContext) []validator.Rule {
		return []validator.Rule{validator.UUID("list_id", v.ListID)}
	})

	createItemSchema = schema.Rules(func(v createItemBody) []validator.Rule {
		rules := []validator.Rule{
			validator.Required("name", v.Name),
			validator.MaxLen("name", v.Name, 100),
			validator.MaxItems("tags", v.Tags, 10),
			validator.Unique("tags", v.Tags),
		}
		return append(rules, validator.Each("tags", v.Tags, func(field, tag string) validator.Rule {
			return validator.LenBetween(field, tag, 1, 32)
		})...)
	}).Transform(func(v *createItemBody) {
		v.Name = sanitizer.Apply(v.Name, sanitizer.StripHTML, sanitizer.SingleLine)
		v.Tags = sanitizer.CleanStrings(v.Tags, sanitizer.ToKebabCase)
	})

	searchQuerySchema = schema.Rules(func(v searchQuery) []validator.Rule {
		return []validator.Rule{
			validator.Between("limit", v.Limit, 1, 100),
			validator.MaxItems("tag", v.Tags, 5),
		}
	}).Default(func(v *searchQuery) {
		if v.Limit == 0 {
			v.Limit = 20
		}
	})

	itemSchema = schema.Rules(func(v item) []validator.Rule {
		return []validator.Rule{
			validator.UUID("id", v.ID),
			validator.Required("name", v.Name),
		}
	})
)

func mountItems(r chi.Router, store *itemStore, adminToken string, createLimit func(http.Handler) http.Handler, opts ...route.Option) {
	named := func(name string) []route.Option {
		return append(slices.Clip(opts), route.WithName(name))
	}

	r.With(createLimit).Method(http.MethodPost, "/lists/{list_id}/items", route.New(route.Params[createItemBody, listContext, route.None, route.None, item]{
		Schemas: &route.Schemas[createItemBody, listContext, route.None, route.None, item]{
			Body:     createItemSchema,
			Context:  listContextSchema,
			Response: itemSchema,
		},
		Handler: func(req *route.Request[createItemBody, listContext, route.None, route.None], reply route.Reply[item], ctx listContext) route.Result {
			it := store.add(ctx.ListID, req.GetBody())
			return reply.JSON(it,
				route.WithStatus(http.StatusCreated),
				route.WithHeader("Location", "/lists/"+ctx.ListID+"/items/"+it.ID),
			)
		},
	}, named("items.create")...))

	r.Method(http.MethodGet, "/lists/{list_id}/items", route.New(route.Params[route.None, listContext, searchQuery, route.None, itemList]{
		Schemas: &route.Schemas[route.None, listContext, searchQuery, route.None, itemList]{
			Context: listContextSchema,
			Query:   searchQuerySchema,
		},
		Handler: func(req *route.Request[route.None, listContext, searchQuery, route.None], reply route.Reply[itemList], ctx listContext) route.Result {
			// ?tag=a&tag=b keeps every tag; repeated limit values collapse.
			q, err := req.GetQuery("tag")
			if err != nil {
				return reply.Error(err)
			}
			items := store.search(ctx.ListID, q.Tags, q.Limit)
			return reply.JSON(itemList{Items: items, Total: len(items)})
		},
	}, named("items.search")...))

	// Shortcut for the most recent list. Served in place, the client URL stays.
	r.Method(http.MethodGet, "/lists/{list_id}/latest", route.New(route.Params[route.None, listContext, route.None, route.None, route.None]{
		Schemas: &route.Schemas[route.None, listContext, route.None, route.None, route.None]{
			Context: listContextSchema,
		},
		Handler: func(_ *route.Request[route.None, listContext, route.None, route.None], reply route.Reply[route.None], ctx listContext) route.Result {
			return reply.Rewrite("/lists/" + ctx.ListID + "/items?limit=1")
		},
	}, named("items.latest")...))

	r.Method(http.MethodGet, "/lists/{list_id}", route.New(route.Params[route.None, listContext, route.None, route.None, route.None]{
		Schemas: &route.Schemas[route.None, listContext, route.None, route.None, route.None]{
			Context: listContextSchema,
		},
		Handler: func(_ *route.Request[route.None, listContext, route.None, route.None], reply route.Reply[route.None], ctx listContext) route.Result {
			return reply.Redirect("/lists/"+ctx.ListID+"/items", route.WithRedirectStatus(http.StatusMovedPermanently))
		},
	}, named("lists.show")...))

	guard := route.New(route.Params[route.None, route.None, route.None, adminHeaders, route.None]{
		Handler: func(req *route.Request[route.None, route.None, route.None, adminHeaders], reply route.Reply[route.None], _ route.None) route.Result {
			if !tokenMatches(req.GetHeaders().Token, adminToken) {
				return reply.Error(route.ErrUnauthorized)
			}
			return reply.Next()
		},
	}, named("admin.guard")...)

	r.Route("/admin", func(r chi.Router) {
		r.Use(guard.Middleware)
		r.Method(http.MethodGet, "/stats", route.New(route.Params[route.None, route.None, route.None, route.None, stats]{
			Handler: func(_ *route.Request[route.None, route.None, route.None, route.None], reply route.Reply[stats], _ route.None) route.Result {
				return reply.JSON(store.stats())
			},
		}, named("admin.stats")...))
	})
}

// tokenMatches compares in constant time. An unset admin token matches nothing.
func tokenMatches(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
