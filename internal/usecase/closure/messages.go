package closure

const (
	msgDateInvalid       = "Fecha inválida, use el formato AAAA-MM-DD"
	msgAlreadyBlocked    = "Esta fecha ya está bloqueada"
	msgBlockOK           = "Día bloqueado correctamente"
	msgBlockFailed       = "Error al bloquear el día"
	msgListOK            = "Días bloqueados obtenidos correctamente"
	msgListFailed        = "Error al obtener los días bloqueados"
	msgDeleteOK          = "Día desbloqueado correctamente"
	msgDeleteFailed      = "Error al desbloquear el día"
	msgClosedDayNotFound = "Día bloqueado no encontrado"
	msgWorkerNotFound    = "Trabajador no encontrado"
	msgHoursInvalid      = "Horario inválido, use HH:MM con apertura antes del cierre"
	msgSpecialOK         = "Horario especial guardado correctamente"
	msgSpecialFailed     = "Error al guardar el horario especial"
	msgSpecialListOK     = "Horarios especiales obtenidos correctamente"
	msgSpecialDeleted    = "Horario especial eliminado correctamente"
	msgSpecialNotFound   = "Horario especial no encontrado"
)
