// Package jsonapi provides a typed object model and codec for JSON:API
// v1.1 documents (https://jsonapi.org/format/).
//
// Documents can be consumed schema-agnostically, with primary data held in
// erased form until the caller decides what to materialize it into:
//
//	doc, err := jsonapi.ParseDocument(body)
//	if doc.HasCollection() {
//		articles, err := jsonapi.DecodeCollection[Article](doc.Data)
//		...
//	}
//
// Or strongly typed, binding the resource's attributes and relationships to
// concrete types up front:
//
//	doc, err := jsonapi.ParseSingleDocument[jsonapi.Resource[ArticleAttributes, ArticleRelationships]](body)
//
// The codec performs structural parsing and serialization only. It does not
// enforce the specification's semantic constraints (member name rules,
// data/errors exclusivity, pagination link completeness); malformed
// structure surfaces as errors, conformance questions are left to the
// caller.
package jsonapi
