// Package paths maps stub files onto the host application tree.
//
// A stub file is addressed by its category (the first directory under the
// stub root) and the sub path below it. The category table is fixed:
//
//   - "Class-like" categories (app, controllers, models, services,
//     notifications, listeners, jobs, events) land under <base>/app, and the
//     first segment of the sub path is converted to StudlyCase so that
//     stubs/models/a2/Order.php becomes app/Models/A2/Order.php.
//   - config, migrations, database and resources are copied verbatim under
//     their own base directory.
//
// Mapping is a pure function of (category, subPath) and the base path given
// to NewMapper. Nothing here touches the filesystem, so every rule can be
// tested without I/O.
//
// Each category's base directory doubles as the pruning boundary used when
// stubs are removed: empty directories are deleted up to and including it.
package paths
