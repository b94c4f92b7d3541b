package jsonapi

import (
	"errors"
	"testing"

	jsonapierrors "github.com/diwise/jsonapi-orm/pkg/jsonapi/errors"
	"github.com/matryer/is"
)

func TestDecodeSingleResourceDocument(t *testing.T) {
	is := is.New(t)
	doc, err := NewDocumentFromJSON([]byte(authorDocumentJSON))

	is.NoErr(err)
	is.True(doc.HasData)
	is.True(!doc.IsCollection)
	is.Equal(len(doc.Data), 1)
	is.Equal(len(doc.Included), 2)
	is.Equal(doc.Meta["total"], float64(1))

	author := doc.Data[0]
	is.Equal(author.Identity(), Identity{Type: "authors", ID: "1"})
	is.Equal(author.Attributes["first_name"], "Stephen")
	is.Equal(author.Meta["rank"], float64(3))
}

func TestDecodeRelationshipMemberKinds(t *testing.T) {
	is := is.New(t)
	doc, err := NewDocumentFromJSON([]byte(authorDocumentJSON))
	is.NoErr(err)

	rels := doc.Data[0].Relationships

	is.Equal(rels["books"].Kind, DataMany)
	is.Equal(len(rels["books"].Many), 2)
	is.Equal(rels["books"].Many[1].Identity(), Identity{Type: "books", ID: "11"})

	is.Equal(rels["bio"].Kind, DataOne)
	is.Equal(rels["bio"].One.ID, "5")

	is.Equal(rels["agent"].Kind, DataNull)
	is.True(rels["agent"].HasData())

	is.Equal(rels["awards"].Kind, DataAbsent)
	is.True(!rels["awards"].HasData())
	is.Equal(rels["awards"].Meta["count"], float64(4))

	is.Equal(rels["tags"].Kind, DataMany)
	is.Equal(len(rels["tags"].Many), 0)
}

func TestDecodeCollectionDocument(t *testing.T) {
	is := is.New(t)
	doc, err := NewDocumentFromJSON([]byte(`{"data":[{"type":"books","id":"1"},{"type":"books","id":"2"}]}`))

	is.NoErr(err)
	is.True(doc.IsCollection)
	is.Equal(len(doc.Data), 2)
	is.Equal(len(doc.Included), 0)
}

func TestDecodeNullPrimaryData(t *testing.T) {
	is := is.New(t)
	doc, err := NewDocumentFromJSON([]byte(`{"data":null}`))

	is.NoErr(err)
	is.True(doc.HasData)
	is.Equal(len(doc.Data), 0)
}

func TestDecodeDocumentWithoutData(t *testing.T) {
	is := is.New(t)
	doc, err := NewDocumentFromJSON([]byte(`{"meta":{"count":0}}`))

	is.NoErr(err)
	is.True(!doc.HasData)
}

func TestMalformedPrimaryDataIsRejected(t *testing.T) {
	is := is.New(t)
	_, err := NewDocumentFromJSON([]byte(`{"data":"authors/1"}`))

	is.True(errors.Is(err, jsonapierrors.ErrMalformedDocument))
}

func TestMalformedRelationshipDataIsRejected(t *testing.T) {
	is := is.New(t)
	_, err := NewDocumentFromJSON([]byte(`{"data":{"type":"authors","id":"1","relationships":{"books":{"data":42}}}}`))

	is.True(errors.Is(err, jsonapierrors.ErrMalformedDocument))
}

func TestMalformedRelationshipInIncludedIsRejected(t *testing.T) {
	is := is.New(t)
	_, err := NewDocumentFromJSON([]byte(`{"data":{"type":"authors","id":"1"},"included":[{"type":"books","id":"2","relationships":{"genre":{"data":"x"}}}]}`))

	is.True(errors.Is(err, jsonapierrors.ErrMalformedDocument))
}

func TestResourceWithoutTypeIsRejected(t *testing.T) {
	is := is.New(t)
	_, err := NewDocumentFromJSON([]byte(`{"data":{"id":"1"}}`))

	is.True(errors.Is(err, jsonapierrors.ErrMalformedDocument))
}

func TestInvalidJSONIsReportedAsMalformed(t *testing.T) {
	is := is.New(t)
	_, err := NewDocumentFromJSON([]byte(`this is not my json`))

	is.True(errors.Is(err, jsonapierrors.ErrMalformedDocument))
}

func TestIndexPrefersPrimaryDataAndFirstIncluded(t *testing.T) {
	is := is.New(t)
	doc, err := NewDocumentFromJSON([]byte(`{
		"data": {"type":"books","id":"1","attributes":{"title":"primary"}},
		"included": [
			{"type":"books","id":"1","attributes":{"title":"included"}},
			{"type":"genres","id":"7","attributes":{"name":"first"}},
			{"type":"genres","id":"7","attributes":{"name":"second"}}
		]
	}`))
	is.NoErr(err)

	index := doc.Index()

	is.Equal(len(index), 2)
	is.Equal(index[Identity{"books", "1"}].Attributes["title"], "primary")
	is.Equal(index[Identity{"genres", "7"}].Attributes["name"], "first")
}

const authorDocumentJSON string = `{
	"data": {
		"type": "authors",
		"id": "1",
		"attributes": {
			"first_name": "Stephen",
			"last_name": "King"
		},
		"relationships": {
			"books": {
				"data": [
					{"type": "books", "id": "10"},
					{"type": "books", "id": "11"}
				]
			},
			"bio": {"data": {"type": "bios", "id": "5"}},
			"agent": {"data": null},
			"awards": {"meta": {"count": 4}},
			"tags": {"data": []}
		},
		"meta": {"rank": 3}
	},
	"included": [
		{"type": "books", "id": "10", "attributes": {"title": "It"}},
		{"type": "books", "id": "11", "attributes": {"title": "Carrie"}}
	],
	"meta": {"total": 1}
}`
