// Package fileutil provides the directory navigation engine used by textfinder.
//
// A Navigator walks a directory tree depth-first and reports what it finds to a
// Visitor. The engine knows nothing about searching: it only decides which
// directories are entered and which files are announced, so the same engine
// drives the content search, the file listing and anything else that wants to
// react to a walk.
//
// # Traversal rules
//
//   - The root must be an existing, listable directory; otherwise Visit returns
//     an error wrapping ErrInvalidRoot and the visitor is never called.
//   - OnDir is called once per directory entered, before any of its files.
//   - OnFile is called once per regular file whose extension (the text after
//     the last ".") is in the pattern set. Matching is case-sensitive.
//   - All files of a directory are dispatched before any of its subdirectories
//     are entered (pre-order). Siblings are visited in name order.
//   - Without recursion only the root's own files are dispatched.
//   - Unreadable files, unreadable subdirectories and broken symlinks are
//     skipped and not counted.
//     Symlinks to regular files are followed; symlinks to directories are not.
//
// # Usage
//
//	nav := fileutil.NewNavigator(visitor, true)
//	nav.AddPattern("txt").AddPattern("rs")
//	if err := nav.Visit(root); err != nil {
//	    if errors.Is(err, fileutil.ErrInvalidRoot) {
//	        // nothing was visited
//	    }
//	    return err
//	}
//	fmt.Println(nav.FilesVisited(), nav.DirsVisited())
//
// ScanDirectory is a convenience wrapper that collects the absolute paths of
// all directories and files a Navigator would announce.
package fileutil
