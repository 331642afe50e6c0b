/*
Package tool ties together the docker CLI listings, the container inventory
and the identifier resolution into the operations offered to operators.
*/
package tool
