// Package collection holds generic containers used internally.
package collection
