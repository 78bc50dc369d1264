package ast

// Document owns an arena plus the root content list produced by compiling
// one template source. It is immutable once the compiler returns it.
type Document struct {
	Arena *Arena
	Root  List
}

// View is a (arena, content list) pair passed by reference rather than by
// ownership — used to hand a section body, or a whole other document's
// content, to a lazy callable without copying the arena.
type View struct {
	Arena   *Arena
	Content List
}

// View returns a View over the document's own arena and root content.
func (d *Document) View() View {
	return View{Arena: d.Arena, Content: d.Content()}
}

// Content returns the document's root content list.
func (d *Document) Content() List {
	return d.Root
}

// Empty reports whether the document's root content list is empty.
func (d *Document) Empty() bool {
	return len(d.Root) == 0
}
