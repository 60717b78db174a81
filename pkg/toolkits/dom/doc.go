// Package dom renders tkir documents as browser DOM calls written against
// the "dom" bridge. Widget paths join ids with "_" and double as variable
// names; every element ends up under the #app mount point.
//
// Text is stripped of markup with bluemonday before it reaches a text node.
// Rich text widgets keep the markup allowed by the UGC policy.
package dom
