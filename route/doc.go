// Package route adapts schema-typed handlers to net/http.
//
// A route declares up to five schemas (body, context, query, headers and
// response). Their type parameters become the handler's request accessors
// and the reply payload type:
//
//	type CreateItem struct {
//		Name string `json:"name"`
//	}
//	type ItemPath struct {
//		ListID uuid.UUID `path:"list_id"`
//	}
//
//	r.Post("/lists/{list_id}/items", route.New(route.Params[CreateItem, ItemPath, route.None, route.None, Item]{
//		Schemas: &route.Schemas[CreateItem, ItemPath, route.None, route.None, Item]{
//			Body: schema.Rules(func(v CreateItem) []validator.Rule {
//				return []validator.Rule{validator.Required("name", v.Name)}
//			}),
//		},
//		Handler: func(req *route.Request[CreateItem, ItemPath, route.None, route.None], reply route.Reply[Item], ctx ItemPath) route.Result {
//			item, err := store.Create(req.Context(), ctx.ListID, req.GetBody().Name)
//			if err != nil {
//				return reply.Error(err)
//			}
//			return reply.JSON(item, route.WithStatus(http.StatusCreated))
//		},
//	}).ServeHTTP)
//
// Context values are bound from path parameters (chi.URLParam by default),
// headers and query from the URL and header map, and the body by Content-Type.
// Every failing source is reported in one 400 response whose details are keyed
// "<source>.<field>". JSON payloads are checked against the response schema
// before they are written; a mismatch is a 500.
//
// Handlers return one of the Reply results or nil (204 No Content). Rewrite
// re-dispatches the request through the router that matched it and Next hands
// it to the successor when the route is mounted with Middleware.
package route
