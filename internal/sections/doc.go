// Package sections splits Markdown text into a flat, ordered list of heading
// sections and joins such a list back into text. Only ATX (#) and setext
// (underlined) headings are recognised; every other construct is body text.
package sections
