package library

const (
	//AuthorTypeName is a type name constant for authors
	AuthorTypeName string = "authors"
	//BookTypeName is a type name constant for books
	BookTypeName string = "books"
	//GenreTypeName is a type name constant for genres
	GenreTypeName string = "genres"
	//BioTypeName is a type name constant for bios
	BioTypeName string = "bios"
	//TagTypeName is a type name constant for tags
	TagTypeName string = "tags"
)
