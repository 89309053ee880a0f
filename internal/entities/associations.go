package entities

// BookCategoryTable is the join table behind Book.Categories and Category.Books.
const BookCategoryTable = "book_category"

// Link adds the pair to both sides of the Book <-> Category association.
// Every in-memory mutation of either collection goes through Link or Unlink
// so the two sets never disagree.
func Link(book *Book, category *Category) {
	if book == nil || category == nil {
		return
	}
	if indexOfCategory(book.Categories, category) < 0 {
		book.Categories = append(book.Categories, category)
	}
	if indexOfBook(category.Books, book) < 0 {
		category.Books = append(category.Books, book)
	}
}

// Unlink removes the pair from both sides of the association.
func Unlink(book *Book, category *Category) {
	if book == nil || category == nil {
		return
	}
	if i := indexOfCategory(book.Categories, category); i >= 0 {
		book.Categories = append(book.Categories[:i], book.Categories[i+1:]...)
	}
	if i := indexOfBook(category.Books, book); i >= 0 {
		category.Books = append(category.Books[:i], category.Books[i+1:]...)
	}
}
