// Package domain defines the entities of the Askr API (users and the
// questions they author) together with their validation rules and the
// pure transformations applied to them, such as title slugs.
//
// Entities here carry no persistence or transport concerns; stores and
// handlers translate to and from them.
package domain
