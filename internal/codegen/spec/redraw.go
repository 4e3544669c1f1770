package spec

// redraw lists the neovim UI "redraw" batch events the bridge subscribes to,
// in the order their signals are declared.
var redraw = Table{
	Event("resize", Integer, Integer),
	Event("clear", Void),
	Event("eol_clear", Void),
	Event("cursor_goto", Integer, Integer),
	Event("update_fg", Integer),
	Event("update_bg", Integer),
	Event("update_sp", Integer),
	Event("highlight_set", OpaqueValue),
	Event("put", Text),
	Event("set_scroll_region", Integer, Integer, Integer, Integer),
	Event("scroll", Integer),
	Event("set_title", Text),
	Event("set_icon", Text),
	Event("mouse_on", Void),
	Event("mouse_off", Void),
	Event("busy_on", Void),
	Event("busy_off", Void),
	Event("suspend", Void),
	Event("bell", Void),
	Event("visual_bell", Void),
	Event("update_menu", Void),
	Event("mode_change", Text),
	Event("popupmenu_show", OpaqueValue, Integer, Integer, Integer),
	Event("popupmenu_select", Integer),
	Event("popupmenu_hide", Void),
}

// Redraw returns a copy of the built-in redraw event table.
func Redraw() Table {
	t := make(Table, len(redraw))
	for i, e := range redraw {
		t[i] = Event(e.Name, e.Args...)
	}
	return t
}
