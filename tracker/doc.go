/*
Package tracker contains the data model for the beeptrack GUI.

The Document holds the song being edited together with its History. The GUI
does not modify the song directly, rather, it goes through Changes: every
Change is applied as soon as it is created and then recorded into the
History, from where it can be undone and redone. Several Changes can be
bundled into a ChangeSequence, which the History treats as a single entry.

Int and Action wrap the document in a way that is convenient for the GUI. For
example, doc.Beats() returns an Int whose SetValue records a single change,
and doc.Undo() returns an Action that can be bound to a button or a key.

Prompts are modal dialogs made of a Tree of widgets (bounded number Editors
and Buttons) that report KeyPress, Blur and Click events to handlers. The
SongSizePrompt edits the four structural parameters of the song and commits
them as one ChangeSequence. Open prompts are kept in a PromptStack.
*/
package tracker
