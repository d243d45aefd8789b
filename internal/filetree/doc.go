// Package filetree provides DirectoryTree, a directory plus a pattern
// configuration that can be walked, narrowed with further patterns and
// queried for membership.
//
// Example:
//
//	tree, err := filetree.NewDirectoryTree("src", patterns.NewPatternSet().Include("**/*.go"))
//	if err != nil {
//	    return err
//	}
//	err = tree.Filter(patterns.NewPatternSet().Exclude("**/*_test.go")).Visit(dirtree.VisitorFuncs{
//	    File: func(d dirtree.FileVisitDetails) error {
//	        fmt.Println(d.RelativePath())
//	        return nil
//	    },
//	})
package filetree
