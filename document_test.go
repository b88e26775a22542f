package jsonapi

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		"jsonapi": {"version": "1.1"},
		"data": {
			"type": "articles",
			"id": "1",
			"attributes": {"title": "JSON:API paints my bikeshed!"},
			"relationships": {
				"author": {
					"links": {"self": "https://x/articles/1/relationships/author"},
					"data": {"type": "people", "id": "9"}
				}
			},
			"links": {"self": "https://x/articles/1"}
		},
		"links": {
			"self": "https://x/articles/1",
			"described": {"href": "https://x/schema", "title": "Schema"}
		},
		"included": [{"type": "people", "id": "9", "attributes": {"name": "dgeb"}}],
		"meta": {"copyright": "2026"}
	}`))
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, "1.1", doc.JSONAPI.Version)
	assert.False(t, doc.HasCollection())
	assert.False(t, doc.HasErrors())

	resource, err := DecodeSingle[ResourceObject](doc.Data)
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Equal(t, "articles", resource.Type)
	assert.Equal(t, map[string]any{"title": "JSON:API paints my bikeshed!"}, resource.Attributes)

	author, ok := resource.Relationships["author"]
	require.True(t, ok)
	assert.Equal(t, "https://x/articles/1/relationships/author", author.Links["self"].HREF)
	id, err := author.Identifier()
	require.NoError(t, err)
	assert.Equal(t, &ResourceIdentifier{Type: "people", Id: "9"}, id)

	assert.Equal(t, "https://x/articles/1", doc.Links["self"].HREF)
	assert.Equal(t, "Schema", doc.Links["described"].Title)

	require.Len(t, doc.Included, 1)
	assert.Equal(t, "people", doc.Included[0].Type)
	assert.Equal(t, map[string]any{"copyright": "2026"}, doc.Meta)
}

func TestParseDocument_NoDocument(t *testing.T) {
	for name, in := range map[string]string{
		"Empty":      ``,
		"Whitespace": "\n\t ",
		"Null":       `null`,
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(in))
			require.NoError(t, err)
			assert.Nil(t, doc)
		})
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	for name, in := range map[string]string{
		"Truncated":     `{"data":`,
		"NotAnObject":   `[1, 2]`,
		"MalformedLink": `{"links":{"self":42}}`,
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(in))
			require.Error(t, err)
			assert.Nil(t, doc)
		})
	}
}

func TestParseDocument_MalformedLinkIsTyped(t *testing.T) {
	// The typed failure kind survives the whole document parse, so callers
	// can branch on it.
	for name, in := range map[string]string{
		"TopLevel":          `{"links":{"self":42}}`,
		"NullHREF":          `{"links":{"self":{"href":null}}}`,
		"NestedDescribedBy": `{"links":{"self":{"href":"https://x/a","describedby":[1]}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(in))
			var malformed *MalformedLinkError
			require.ErrorAs(t, err, &malformed)
			assert.Nil(t, doc)
		})
	}
}

func TestDocument_ErrorsOnly(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"errors":[{"status":"404","title":"Not Found"}]}`))
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.True(t, doc.HasErrors())
	assert.False(t, doc.HasCollection())
	require.Len(t, doc.Errors, 1)
	assert.Equal(t, "404", doc.Errors[0].Status)
	assert.Equal(t, "Not Found", doc.Errors[0].Title)
}

func TestDocument_DataAndErrorsCoexist(t *testing.T) {
	// The specification intends these as alternatives, but the codec
	// reports both facts independently.
	doc, err := ParseDocument([]byte(`{"data":[],"errors":[{"status":"500"}]}`))
	require.NoError(t, err)
	assert.True(t, doc.HasCollection())
	assert.True(t, doc.HasErrors())
}

func TestDocument_ExtensionPassthrough(t *testing.T) {
	in := `{"version:id":"42","data":{"type":"articles","id":"1"},"atomic:operations":[{"op":"add"}]}`
	doc, err := ParseDocument([]byte(in))
	require.NoError(t, err)
	require.NotNil(t, doc)

	require.Contains(t, doc.Extensions, "version:id")
	assert.Equal(t, `"42"`, string(doc.Extensions["version:id"]))
	require.Contains(t, doc.Extensions, "atomic:operations")

	out, err := jsoniter.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestDocument_RoundTrip(t *testing.T) {
	for name, in := range map[string]string{
		"Single":          `{"data":{"type":"articles","id":"1","attributes":{"title":"A"}}}`,
		"Collection":      `{"data":[{"type":"articles","id":"1"},{"type":"articles","id":"2"}]}`,
		"EmptyCollection": `{"data":[]}`,
		"MetaOnly":        `{"meta":{"count":0}}`,
		"Errors":          `{"errors":[{"status":"404","title":"Not Found","source":{"pointer":"/data"}}]}`,
		"CompactLinks":    `{"links":{"self":"https://x/a","related":{"href":"https://x/b","title":"B"}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(in))
			require.NoError(t, err)
			out, err := jsoniter.Marshal(doc)
			require.NoError(t, err)
			assert.JSONEq(t, in, string(out))
		})
	}
}

type articleAttributes struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

type articleRelationships struct {
	Author   Relationship `json:"author"`
	Comments Relationship `json:"comments"`
}

type article = Resource[articleAttributes, articleRelationships]

const articleBody = `{
	"data": {
		"type": "articles",
		"id": "1",
		"attributes": {"title": "JSON:API paints my bikeshed!"},
		"relationships": {
			"author": {"data": {"type": "people", "id": "9"}},
			"comments": {"data": [{"type": "comments", "id": "5"}, {"type": "comments", "id": "12"}]}
		}
	}
}`

func TestParseSingleDocument(t *testing.T) {
	doc, err := ParseSingleDocument[article]([]byte(articleBody))
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.NotNil(t, doc.Data)

	assert.Equal(t, "articles", doc.Data.Type)
	assert.Equal(t, "JSON:API paints my bikeshed!", doc.Data.Attributes.Title)

	author, err := doc.Data.Relationships.Author.Identifier()
	require.NoError(t, err)
	assert.Equal(t, &ResourceIdentifier{Type: "people", Id: "9"}, author)

	comments, err := doc.Data.Relationships.Comments.Identifiers()
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "12", comments[1].Id)
}

func TestParseCollectionDocument(t *testing.T) {
	doc, err := ParseCollectionDocument[article]([]byte(`{"data":[
		{"type":"articles","id":"1","attributes":{"title":"A"}},
		{"type":"articles","id":"2","attributes":{"title":"B"}}
	]}`))
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Len(t, doc.Data, 2)
	assert.Equal(t, "B", doc.Data[1].Attributes.Title)
}

func TestParseTypedDocument_ShapeMismatch(t *testing.T) {
	t.Run("CollectionThroughSingle", func(t *testing.T) {
		_, err := ParseSingleDocument[article]([]byte(`{"data":[]}`))
		var mismatch *ShapeMismatchError
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("SingleThroughCollection", func(t *testing.T) {
		_, err := ParseCollectionDocument[article]([]byte(`{"data":{"type":"articles","id":"1"}}`))
		var mismatch *ShapeMismatchError
		require.ErrorAs(t, err, &mismatch)
	})
}

func TestProjectDocument_LeavesGenericDocumentIntact(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"data":[{"type":"articles","id":"1"}]}`))
	require.NoError(t, err)

	_, err = ProjectSingleDocument[article](doc)
	require.Error(t, err)

	// The failed projection does not invalidate the parsed document.
	assert.True(t, doc.HasCollection())
	projected, err := ProjectCollectionDocument[article](doc)
	require.NoError(t, err)
	assert.Len(t, projected.Data, 1)
}

func TestParseTypedDocument_NoDocument(t *testing.T) {
	single, err := ParseSingleDocument[article](nil)
	require.NoError(t, err)
	assert.Nil(t, single)

	collection, err := ParseCollectionDocument[article]([]byte("null"))
	require.NoError(t, err)
	assert.Nil(t, collection)
}

func TestTypedDocument_Marshal(t *testing.T) {
	doc := &SingleDocument[article]{
		Data: &article{
			Type: "articles",
			Id:   "1",
			Attributes: articleAttributes{
				Title: "A",
			},
		},
		Links: Links{"self": NewLink("https://x/articles/1")},
	}
	out, err := jsoniter.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"data": {
			"type": "articles",
			"id": "1",
			"attributes": {"title": "A"},
			"relationships": {"author": {}, "comments": {}}
		},
		"links": {"self": "https://x/articles/1"}
	}`, string(out))
}
