// Package graphql exposes a read-only GraphQL view of the menu so clients
// can fetch exactly the fields they render. Mutations stay on the REST
// surface.
package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
	"github.com/shashiranjanraj/verandah/app/repositories"
	"github.com/shashiranjanraj/verandah/app/services"
	"github.com/shashiranjanraj/verandah/pkg/logger"
)

// The id lives on the embedded base model, which the default resolver does
// not traverse, so both types resolve it explicitly.
var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.Int, Resolve: resolveCategoryID},
		"name":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"image":       &graphql.Field{Type: graphql.String},
	},
})

var menuItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MenuItem",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.Int, Resolve: resolveMenuItemID},
		"name":            &graphql.Field{Type: graphql.String},
		"description":     &graphql.Field{Type: graphql.String},
		"price":           &graphql.Field{Type: graphql.Float},
		"categoryId":      &graphql.Field{Type: graphql.Int},
		"image":           &graphql.Field{Type: graphql.String},
		"isVegetarian":    &graphql.Field{Type: graphql.Boolean},
		"isAvailable":     &graphql.Field{Type: graphql.Boolean},
		"preparationTime": &graphql.Field{Type: graphql.Int},
	},
})

func resolveCategoryID(p graphql.ResolveParams) (interface{}, error) {
	switch c := p.Source.(type) {
	case models.Category:
		return int(c.ID), nil
	case *models.Category:
		return int(c.ID), nil
	}
	return nil, nil
}

func resolveMenuItemID(p graphql.ResolveParams) (interface{}, error) {
	switch m := p.Source.(type) {
	case models.MenuItem:
		return int(m.ID), nil
	case *models.MenuItem:
		return int(m.ID), nil
	}
	return nil, nil
}

// NewSchema builds the menu query schema backed by the menu service.
func NewSchema(menu *services.MenuService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"categories": &graphql.Field{
				Type: graphql.NewList(categoryType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return menu.Categories()
				},
			},
			"menuItems": &graphql.Field{
				Type: graphql.NewList(menuItemType),
				Args: graphql.FieldConfigArgument{
					"categoryId": &graphql.ArgumentConfig{Type: graphql.Int},
					"search":     &graphql.ArgumentConfig{Type: graphql.String},
					"vegetarian": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := repositories.MenuItemFilter{OnlyAvailable: true}
					if id, ok := p.Args["categoryId"].(int); ok {
						filter.CategoryID = uint(id)
					}
					if search, ok := p.Args["search"].(string); ok {
						filter.Search = search
					}
					if veg, ok := p.Args["vegetarian"].(bool); ok {
						filter.Vegetarian = &veg
					}
					items, _, err := menu.Items(filter, 1, 100)
					return items, err
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

// Handler returns the POST /api/graphql endpoint.
func Handler(db *gorm.DB) http.HandlerFunc {
	schema, err := NewSchema(services.NewMenuService(db))
	if err != nil {
		// A broken schema is a programming error; fail loudly at boot.
		panic(err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query         string                 `json:"query"`
			Variables     map[string]interface{} `json:"variables"`
			OperationName string                 `json:"operationName"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, `{"errors":[{"message":"invalid request body"}]}`, http.StatusBadRequest)
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
			OperationName:  body.OperationName,
			Context:        r.Context(),
		})
		if len(result.Errors) > 0 {
			logger.WithCtx(r.Context()).Warn("graphql query failed", "errors", result.Errors[0].Message)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
